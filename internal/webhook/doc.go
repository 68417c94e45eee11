// Package webhook implements the inbound interaction endpoint with Ed25519
// signature verification.
//
// The platform signs every interaction callback with the application's
// private key. Nothing in the request is trusted until the signature over
// the timestamp header followed by the raw body verifies against the
// application's public key.
//
// # Security Model
//
// - Ed25519 verification of timestamp || body (crypto/ed25519)
// - Headers are checked before the body is read
// - The body is decoded only after its signature verifies
// - No rejection details leaked in responses (bare status code)
// - Request logging excludes payloads
//
// # Request Flow
//
//  1. HTTP POST arrives at /api/interactions
//  2. X-Signature-Ed25519 and X-Signature-Timestamp extracted (400 if missing)
//  3. Body read (500 on transport failure)
//  4. Signature decoded (400 if malformed) and verified (401 if invalid)
//  5. Body decoded into an interaction (400 if it does not match the schema)
//  6. Interaction dispatched; the response object is returned with 200
//
// Domain failures after step 5 are never HTTP errors: the dispatcher renders
// them as messages inside a 200 response.
//
// # Example Usage
//
//	key, err := webhook.ParseKey(app.VerifyKey)
//	if err != nil {
//		return err
//	}
//	server := webhook.New(webhook.Config{Listen: ":8080"}, key, dispatcher, logger)
//	if err := server.Start(ctx); err != nil && err != context.Canceled {
//		return err
//	}
package webhook
