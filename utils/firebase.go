// utils/firebase.go
package utils

import (
	"context"
	"log"

	"katwate/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
)

var (
	FirebaseApp     *firebase.App
	AuthClient      *auth.Client
	FirestoreClient *firestore.Client
	FCMClient       *messaging.Client
)

// FirebaseInit initializes the Firebase App together with the Auth, Firestore
// and Messaging clients.
func FirebaseInit() {
	ctx := context.Background()

	var fbConfig *firebase.Config
	if config.AppConfig.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, config.FirebaseClientOptions()...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}
	FirebaseApp = app

	if AuthClient, err = app.Auth(ctx); err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	if FCMClient, err = app.Messaging(ctx); err != nil {
		log.Fatalf("firebase: error getting Messaging client: %v", err)
	}

	// Firestore is only opened when it backs the document store.
	if config.AppConfig.StoreBackend == "firestore" {
		if FirestoreClient, err = app.Firestore(ctx); err != nil {
			log.Fatalf("firebase: error getting Firestore client: %v", err)
		}
	}
}

// FirebaseClose releases the Firestore connection.
func FirebaseClose() {
	if FirestoreClient != nil {
		if err := FirestoreClient.Close(); err != nil {
			GetLogger().Sugar().Warnf("firebase: error closing Firestore client: %v", err)
		}
	}
}
