package lib_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/todo/pkg/lib"
)

// This example shows the task lifecycle: add, complete, list and remove.
func Example_lifecycle() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	for _, text := range []string{"Buy groceries", "Walk dog"} {
		if _, err := client.AddTask(ctx, text); err != nil {
			panic(err)
		}
	}

	if _, err := client.ToggleTask(ctx, 1); err != nil {
		panic(err)
	}

	list, err := client.ListTasks(ctx, &lib.ListTasksOpts{Filter: lib.FilterActive})
	if err != nil {
		panic(err)
	}
	for _, t := range list.Tasks {
		fmt.Printf("%d: %s\n", t.ID, t.Text)
	}
	fmt.Printf("Total: %d | Active: %d | Completed: %d\n", list.Stats.Total, list.Stats.Active, list.Stats.Completed)

	res, err := client.RemoveTask(ctx, 7)
	if err != nil {
		panic(err)
	}
	fmt.Println("remove 7:", res)

	// Output:
	// 2: Walk dog
	// Total: 2 | Active: 1 | Completed: 1
	// remove 7: ignored
}

// This example shows how to check for a missing task.
func Example_errorHandling() {
	ctx := context.Background()

	client, err := lib.New(ctx, lib.Config{})
	if err != nil {
		panic(err)
	}
	defer client.Close()

	_, err = client.GetTask(ctx, 1)
	if errors.Is(err, lib.ErrNotFound) {
		fmt.Println("task not found")
	}

	// Output:
	// task not found
}
