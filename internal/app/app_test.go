package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/app"
	"github.com/vk/taskmill/internal/dag"
	"github.com/vk/taskmill/internal/executor"
	"github.com/vk/taskmill/internal/testutil"
)

const pipelineHCL = `
settings {
  default = "build"
}

task "clean" {
  description = "Remove build artifacts"
  commands    = ["rm -rf out"]
}

task "build" {
  description = "Produce the artifact"
  deps        = ["clean"]
  commands    = ["make-artifact"]
}

task "test" {
  deps     = ["build"]
  commands = ["run-tests", "make-report"]
}
`

func TestRun_TargetWithTransitivePrerequisites(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.hcl", pipelineHCL, app.Config{Target: "test"}, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"rm -rf out", "make-artifact", "run-tests", "make-report"}, result.Runner.Commands)
}

func TestRun_DefaultTargetFromSettings(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.hcl", pipelineHCL, app.Config{}, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"rm -rf out", "make-artifact"}, result.Runner.Commands)
}

func TestRun_FailingCommandHaltsEverything(t *testing.T) {
	t.Parallel()

	runner := testutil.NewRecordingRunner()
	runner.ExitStatus["run-tests"] = 1

	result := testutil.RunTaskfile(t, "taskmill.hcl", pipelineHCL, app.Config{Target: "test"}, runner)
	require.Error(t, result.Err)

	var cmdErr *executor.CommandError
	require.True(t, errors.As(result.Err, &cmdErr))
	assert.Equal(t, "test", cmdErr.Task)
	assert.Equal(t, "run-tests", cmdErr.Command)
	assert.Equal(t, 1, cmdErr.ExitStatus)

	// make-report never ran.
	assert.Equal(t, []string{"rm -rf out", "make-artifact", "run-tests"}, runner.Commands)
}

func TestRun_CycleExecutesNothing(t *testing.T) {
	t.Parallel()

	cyclic := `
task "a" {
  deps     = ["b"]
  commands = ["cmd-a"]
}

task "b" {
  deps     = ["a"]
  commands = ["cmd-b"]
}
`
	result := testutil.RunTaskfile(t, "taskmill.hcl", cyclic, app.Config{Target: "a"}, nil)
	require.Error(t, result.Err)

	var cycleErr *dag.CycleError
	require.True(t, errors.As(result.Err, &cycleErr))
	assert.Empty(t, result.Runner.Commands)
}

func TestRun_UnresolvedReferenceExecutesNothing(t *testing.T) {
	t.Parallel()

	dangling := `
task "build" {
  deps     = ["generate"]
  commands = ["make-artifact"]
}
`
	result := testutil.RunTaskfile(t, "taskmill.hcl", dangling, app.Config{Target: "build"}, nil)
	require.Error(t, result.Err)

	var unknownErr *dag.UnknownDependencyError
	require.True(t, errors.As(result.Err, &unknownErr))
	assert.Equal(t, "build", unknownErr.Task)
	assert.Equal(t, "generate", unknownErr.Dependency)
	assert.Empty(t, result.Runner.Commands)
}

func TestRun_MissingTargetExecutesNothing(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.hcl", pipelineHCL, app.Config{Target: "deploy"}, nil)
	require.Error(t, result.Err)

	var targetErr *executor.UnknownTargetError
	require.True(t, errors.As(result.Err, &targetErr))
	assert.Empty(t, result.Runner.Commands)
}

func TestRun_ListTasks(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.hcl", pipelineHCL, app.Config{ListTasks: true}, nil)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "clean")
	assert.Contains(t, result.Output, "Remove build artifacts")
	assert.Contains(t, result.Output, "build (default)")
	assert.Empty(t, result.Runner.Commands)
}

func TestRun_YAMLTaskfile(t *testing.T) {
	t.Parallel()

	content := `
default: test
tasks:
  build:
    commands: ["make-artifact"]
  test:
    deps: [build]
    commands: ["run-tests"]
`
	result := testutil.RunTaskfile(t, "taskmill.yaml", content, app.Config{}, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"make-artifact", "run-tests"}, result.Runner.Commands)
}

func TestRun_TOMLTaskfile(t *testing.T) {
	t.Parallel()

	content := `
[tasks.build]
commands = ["make-artifact"]

[tasks.test]
deps = ["build"]
commands = ["run-tests"]
`
	result := testutil.RunTaskfile(t, "taskmill.toml", content, app.Config{Target: "test"}, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"make-artifact", "run-tests"}, result.Runner.Commands)
}

func TestRun_FirstDeclaredTaskIsFallbackDefault(t *testing.T) {
	t.Parallel()

	content := `
task "lint" {
  commands = ["run-lint"]
}

task "build" {
  commands = ["make-artifact"]
}
`
	result := testutil.RunTaskfile(t, "taskmill.hcl", content, app.Config{}, nil)
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"run-lint"}, result.Runner.Commands)
}

func TestRun_EmptyTaskfileIsAnError(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.hcl", "", app.Config{}, nil)
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "defines no tasks")
}

func TestNewApp_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	result := testutil.RunTaskfile(t, "taskmill.json", `{}`, app.Config{}, nil)
	require.Error(t, result.Err)
	assert.ErrorContains(t, result.Err, "unsupported taskfile format")
}
