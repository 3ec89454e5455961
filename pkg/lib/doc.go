// Package lib provides a Go SDK to embed the todo task registry in other applications.
//
// It runs the same operations as the todo server in process, without an HTTP
// round trip, and exposes the web application as an [http.Handler] so it can be
// mounted on an existing server.
//
// # Quick Start
//
//	client, err := lib.New(ctx, lib.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	task, _ := client.AddTask(ctx, "Buy groceries")
//	client.ToggleTask(ctx, task.ID)
//	tasks, _ := client.ListTasks(ctx, &lib.ListTasksOpts{Filter: lib.FilterCompleted})
//
// # Storage
//
// By default tasks live in memory and are lost when the client is closed. Set
// [Config.Storage] to [StorageSQLite] to keep them in a SQLite database at
// [Config.DBPath].
//
// # Ignored changes
//
// Adding or editing with an empty text and toggling, editing or removing an
// unknown task are not errors. The mutating methods return a [ChangeResult]
// telling if the registry changed.
//
// # Error Handling
//
// Errors can be inspected with [errors.Is]:
//
//   - [ErrNotFound]: Task does not exist.
//   - [ErrNotValid]: Invalid input or configuration.
//
// # Thread Safety
//
// A [Client] is safe for concurrent use from multiple goroutines.
package lib
