package main

import (
	"os"
	"strconv"
	"time"
)

func envString(name, or string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return or
}

func envInt(name string, or int) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return or
	}
	return v
}

func envFloat(name string, or float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(name), 64)
	if err != nil {
		return or
	}
	return v
}

func envDuration(name string, or time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(name))
	if err != nil {
		return or
	}
	return v
}
