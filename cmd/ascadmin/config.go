package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	endpoint        string
	backendEndpoint string
	backendTimeout  time.Duration
	logLevel        string
	env             string
	authSecretKey   string
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

func NewConfig() Config {
	var (
		endpoint        string
		backendEndpoint string
		backendTimeout  time.Duration
		logLevel        string
		env             string
		authSecretKey   string
	)

	flag.StringVar(&endpoint, "a", "localhost:8090", "address and port to run server")
	flag.StringVar(&backendEndpoint, "b", "http://localhost:3333", "base URL of the certificates backend")
	flag.DurationVar(&backendTimeout, "t", 15*time.Second, "request timeout for backend calls")
	flag.Parse()

	if address := os.Getenv("RUN_ADDRESS"); address != "" {
		endpoint = address
	}

	if backendAddress := os.Getenv("BACKEND_ADDRESS"); backendAddress != "" {
		backendEndpoint = backendAddress
	}

	if timeout := os.Getenv("BACKEND_TIMEOUT_SECONDS"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil && seconds > 0 {
			backendTimeout = time.Duration(seconds) * time.Second
		}
	}

	if l := os.Getenv("LOG_LEVEL"); l != "" {
		logLevel = l
	} else {
		logLevel = "error"
	}

	if e := os.Getenv("ENV"); e != "" {
		env = e
	} else {
		env = "production"
	}

	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		authSecretKey = secret
	} else {
		if env == "production" {
			authSecretKey = generateRandomString(10)
			log.Printf("WARNING: AUTH_SECRET_KEY has to be defined for production environment\n")
		} else {
			authSecretKey = "development-key"
		}
	}

	return Config{
		endpoint,
		backendEndpoint,
		backendTimeout,
		logLevel,
		env,
		authSecretKey,
	}
}
