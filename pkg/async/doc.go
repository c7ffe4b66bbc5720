// Package async runs functions in the background and hands back typed
// futures.
//
//	f := async.Async(ctx, req, media.storeOne)
//	// ...
//	path, err := f.Await()
//
// A Future settles exactly once. Await blocks, AwaitWithTimeout gives up with
// ErrTimeout, and IsComplete or Done allow polling and select. When ctx is
// already canceled the function is not started and the future settles with
// ctx.Err().
//
// WaitAll collects results in argument order and stops at the first error.
// WaitAny returns whichever future settles first:
//
//	i, v, err := async.WaitAny(primary, fallback)
//
// ExecFuture wraps functions that only report an error, such as removing
// a file, with Exec, ExecAll and ExecAny as counterparts.
package async
