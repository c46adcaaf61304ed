// Package taskwing provides an asynchronous task-dispatch substrate: a
// shared work queue drained by pluggable workers, a delivery queue carrying
// each action's outcome to a consumer, and a dynamic registry binding named,
// signature-described operations to callable implementations.
//
// Hosts embed the engine through the Service facade:
//
//	srv := taskwing.New()
//	rt := srv.Runtime()
//	_ = rt.Start(ctx)
//	_ = rt.Assign(action.NewRead("mem://localhost/data/x.txt"))
//	pending, _ := srv.Approval().ListPending(ctx)
//	_ = rt.Shutdown()
//
// For details see the individual sub-packages.
package taskwing
