package mongodb

import (
	"context"
	"time"

	"Page_Rank/pagegraph/graph"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"
)

// Field names of the page documents. They match the layout of collections
// populated by earlier versions of the ranking service.
const (
	fieldID       = "pageID"
	fieldURL      = "pageURL"
	fieldRank     = "CurrentPageRank"
	fieldOutLinks = "EmbeddedURLs"
	fieldInLinks  = "WebsitesReferencingThisPage"
)

// Compile-time check for ensuring MongoDBGraph implements Graph.
var _ graph.Graph = (*MongoDBGraph)(nil)

// Config encapsulates the settings for connecting to a MongoDB collection.
type Config struct {
	// The connection URI, e.g. mongodb://localhost:27017.
	URI string

	// The database and collection that hold the page documents.
	Database   string
	Collection string

	// OpTimeout bounds every store operation. A zero value disables
	// timeouts.
	OpTimeout time.Duration
}

func (cfg *Config) validate() error {
	var err error
	if cfg.URI == "" {
		err = multierror.Append(err, xerrors.Errorf("connection URI has not been specified"))
	}
	if cfg.Database == "" {
		err = multierror.Append(err, xerrors.Errorf("database name has not been specified"))
	}
	if cfg.Collection == "" {
		err = multierror.Append(err, xerrors.Errorf("collection name has not been specified"))
	}
	if cfg.OpTimeout < 0 {
		err = multierror.Append(err, xerrors.Errorf("invalid value for operation timeout"))
	}
	return err
}

type pageDocument struct {
	ID       string   `bson:"pageID,omitempty"`
	URL      string   `bson:"pageURL"`
	Rank     float64  `bson:"CurrentPageRank"`
	OutLinks []string `bson:"EmbeddedURLs"`
	InLinks  []string `bson:"WebsitesReferencingThisPage"`
}

func (d *pageDocument) toPage() *graph.Page {
	page := &graph.Page{
		URL:      d.URL,
		Rank:     d.Rank,
		OutLinks: d.OutLinks,
		InLinks:  d.InLinks,
	}
	// Documents written by other tools may lack an ID until the next call
	// to Pages assigns one; until then they carry the nil UUID.
	if id, err := uuid.Parse(d.ID); err == nil {
		page.ID = id
	}
	if page.OutLinks == nil {
		page.OutLinks = []string{}
	}
	if page.InLinks == nil {
		page.InLinks = []string{}
	}
	return page
}

// MongoDBGraph implements a graph that persists pages as documents in a
// MongoDB collection.
type MongoDBGraph struct {
	client    *mongo.Client
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewMongoDBGraph connects to the MongoDB deployment described by cfg and
// ensures that the required indices exist.
func NewMongoDBGraph(ctx context.Context, cfg Config) (*MongoDBGraph, error) {
	if err := cfg.validate(); err != nil {
		return nil, xerrors.Errorf("mongodb graph: config validation failed: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, xerrors.Errorf("connect: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, xerrors.Errorf("ping: %w", err)
	}

	m := &MongoDBGraph{
		client:    client,
		coll:      client.Database(cfg.Database).Collection(cfg.Collection),
		opTimeout: cfg.OpTimeout,
	}
	if err = m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return m, nil
}

// Close disconnects from the MongoDB deployment.
func (m *MongoDBGraph) Close() error {
	return m.client.Disconnect(context.Background())
}

func (m *MongoDBGraph) ensureIndexes(ctx context.Context) error {
	_, err := m.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: fieldURL, Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: fieldID, Value: 1}},
		},
	})
	if err != nil {
		return xerrors.Errorf("create indexes: %w", err)
	}
	return nil
}

// FindPage implements graph.Graph.
func (m *MongoDBGraph) FindPage(url string) (*graph.Page, error) {
	ctx, cancelFn := m.opContext()
	defer cancelFn()

	var doc pageDocument
	if err := m.coll.FindOne(ctx, bson.M{fieldURL: url}).Decode(&doc); err != nil {
		if xerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.Errorf("find page: %w", graph.ErrNotFound)
		}
		return nil, xerrors.Errorf("find page: %w", err)
	}
	return doc.toPage(), nil
}

// SetOutLinks implements graph.Graph.
func (m *MongoDBGraph) SetOutLinks(url string, outLinks []string) error {
	if outLinks == nil {
		outLinks = []string{}
	}
	update := bson.M{
		"$set": bson.M{fieldOutLinks: outLinks},
		"$setOnInsert": bson.M{
			fieldID:      uuid.New().String(),
			fieldRank:    0.0,
			fieldInLinks: []string{},
		},
	}
	if err := m.upsert(url, update); err != nil {
		return xerrors.Errorf("set out-links: %w", err)
	}
	return nil
}

// AddInLink implements graph.Graph.
func (m *MongoDBGraph) AddInLink(url, referrer string) error {
	update := bson.M{
		"$addToSet": bson.M{fieldInLinks: referrer},
		"$setOnInsert": bson.M{
			fieldID:       uuid.New().String(),
			fieldRank:     0.0,
			fieldOutLinks: []string{},
		},
	}
	if err := m.upsert(url, update); err != nil {
		return xerrors.Errorf("add in-link: %w", err)
	}
	return nil
}

// upsert applies update to the document for url, creating it if needed.
// Two concurrent upserts for a missing document may race on the unique URL
// index; the loser is replayed once, at which point the document exists.
func (m *MongoDBGraph) upsert(url string, update bson.M) error {
	ctx, cancelFn := m.opContext()
	defer cancelFn()

	opts := options.Update().SetUpsert(true)
	_, err := m.coll.UpdateOne(ctx, bson.M{fieldURL: url}, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		_, err = m.coll.UpdateOne(ctx, bson.M{fieldURL: url}, update, opts)
	}
	return err
}

// UpdateRank implements graph.Graph.
func (m *MongoDBGraph) UpdateRank(url string, rank float64) error {
	ctx, cancelFn := m.opContext()
	defer cancelFn()

	res, err := m.coll.UpdateOne(ctx, bson.M{fieldURL: url}, bson.M{"$set": bson.M{fieldRank: rank}})
	if err != nil {
		return xerrors.Errorf("update rank: %w", err)
	}
	if res.MatchedCount == 0 {
		return xerrors.Errorf("update rank: %w", graph.ErrNotFound)
	}
	return nil
}

// Pages implements graph.Graph. Documents without an ID are assigned one
// first so that they fall into exactly one partition.
func (m *MongoDBGraph) Pages(fromID, toID uuid.UUID) (graph.PageIterator, error) {
	if err := m.assignMissingIDs(); err != nil {
		return nil, xerrors.Errorf("pages: %w", err)
	}

	filter := bson.M{fieldID: bson.M{"$gte": fromID.String(), "$lt": toID.String()}}

	// The cursor outlives this call so it is not bound by OpTimeout.
	ctx := context.Background()
	cur, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, xerrors.Errorf("pages: %w", err)
	}
	return &pageIterator{ctx: ctx, cur: cur}, nil
}

func (m *MongoDBGraph) assignMissingIDs() error {
	ctx, cancelFn := m.opContext()
	defer cancelFn()

	missing := bson.M{fieldID: bson.M{"$exists": false}}
	cur, err := m.coll.Find(ctx, missing, options.Find().SetProjection(bson.M{fieldURL: 1}))
	if err != nil {
		return xerrors.Errorf("find documents without ID: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	for cur.Next(ctx) {
		var doc pageDocument
		if err = cur.Decode(&doc); err != nil {
			return xerrors.Errorf("decode document: %w", err)
		}

		// Another instance may have assigned an ID in the meantime.
		filter := bson.M{fieldURL: doc.URL, fieldID: bson.M{"$exists": false}}
		update := bson.M{"$set": bson.M{fieldID: uuid.New().String()}}
		if _, err = m.coll.UpdateOne(ctx, filter, update); err != nil {
			return xerrors.Errorf("assign ID to %q: %w", doc.URL, err)
		}
	}
	return cur.Err()
}

func (m *MongoDBGraph) opContext() (context.Context, context.CancelFunc) {
	if m.opTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), m.opTimeout)
}
