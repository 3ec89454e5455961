package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

var multiSpaceRegex = regexp.MustCompile(" +")

// RunTodo executes a todo command with the given arguments string (split by spaces).
// Use RunTodoArgs when arguments contain spaces that should be preserved.
func RunTodo(ctx context.Context, env []string, binary, cmdArgs string, nolog bool) (stdout, stderr []byte, err error) {
	cmdArgs = strings.TrimSpace(cmdArgs)
	cmdArgs = multiSpaceRegex.ReplaceAllString(cmdArgs, " ")

	var args []string
	if cmdArgs != "" {
		args = strings.Split(cmdArgs, " ")
	}

	return RunTodoArgs(ctx, env, binary, args, nolog)
}

// RunTodoArgs executes a todo command with pre-split arguments.
func RunTodoArgs(ctx context.Context, env []string, binary string, args []string, nolog bool) (stdout, stderr []byte, err error) {
	var outData, errData bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData
	cmd.Env = commandEnv(env, nolog)

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}

// StartTodo starts a long running todo command (e.g. serve), the returned
// function stops it and waits for it to exit.
func StartTodo(ctx context.Context, env []string, binary string, args []string, nolog bool) (stop func() error, err error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = commandEnv(env, nolog)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return func() error {
		if err := cmd.Process.Signal(os.Interrupt); err != nil {
			return err
		}
		return cmd.Wait()
	}, nil
}

// commandEnv returns os.Environ() with the custom env on top, last key wins.
func commandEnv(env []string, nolog bool) []string {
	newEnv := append([]string{}, os.Environ()...)
	newEnv = append(newEnv, env...)
	if nolog {
		newEnv = append(newEnv, "TODO_NO_LOG=true")
	}
	return newEnv
}
