// Package seed manages the DungeonSeed record: generation from a primary
// seed, a base64url-plus-delimiter shareable code codec, and the
// normalizeSeed helper that turns a caller-supplied number or string into
// the uint32 primary seed every pipeline run starts from.
package seed
