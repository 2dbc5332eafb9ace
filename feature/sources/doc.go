// Package sources adapts upstream collaborators to the hub source interfaces.
//
// The scrapers publish three JSON documents: structs.json (list of structs),
// teachers.json (teacher roster) and schedules.json (struct code to group schedules).
// They are read from a local directory or from an object storage bucket. The roster can
// alternatively come from the relational `teachers` table.
//
// # Usage
//
//	src, err := sources.New(cfg.Sources, store, cfg.Storage.Bucket, db)
//	in, err := hub.Collect(ctx, src)
package sources
