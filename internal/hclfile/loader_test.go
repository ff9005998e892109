package hclfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/taskmill/internal/config"
)

func loadString(t *testing.T, content string) (*config.Model, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskmill.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return NewLoader().Load(context.Background(), path)
}

func TestLoad_FullTaskfile(t *testing.T) {
	t.Parallel()

	model, err := loadString(t, `
settings {
  default = "build"
}

task "clean" {
  description = "Remove build artifacts"
  commands    = ["rm -rf out"]
  always      = true
}

task "build" {
  deps     = ["clean"]
  commands = ["make-artifact"]
}

task "test" {
  deps     = ["build"]
  commands = ["run-tests", "make-report"]
}
`)
	require.NoError(t, err)

	assert.Equal(t, "build", model.DefaultTarget)
	require.Len(t, model.Tasks, 3)

	clean := model.Tasks[0]
	assert.Equal(t, "clean", clean.Name)
	assert.Equal(t, "Remove build artifacts", clean.Description)
	assert.Equal(t, []string{"rm -rf out"}, clean.Commands)
	assert.True(t, clean.Always)
	assert.Empty(t, clean.DependsOn)

	test := model.Tasks[2]
	assert.Equal(t, []string{"build"}, test.DependsOn)
	assert.Equal(t, []string{"run-tests", "make-report"}, test.Commands)
	assert.False(t, test.Always)
}

func TestLoad_VarsInterpolation(t *testing.T) {
	t.Parallel()

	model, err := loadString(t, `
vars {
  out_dir = "dist"
  flags   = "-v"
}

task "build" {
  commands = ["compile ${vars.flags} -o ${vars.out_dir}/app"]
}
`)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 1)
	assert.Equal(t, []string{"compile -v -o dist/app"}, model.Tasks[0].Commands)
}

func TestLoad_UnknownVarFails(t *testing.T) {
	t.Parallel()

	_, err := loadString(t, `
task "build" {
  commands = ["compile ${vars.missing}"]
}
`)
	require.Error(t, err)
	assert.ErrorContains(t, err, `task "build"`)
}

func TestLoad_TaskWithoutCommands(t *testing.T) {
	t.Parallel()

	model, err := loadString(t, `
task "all" {
  deps = ["build", "test"]
}

task "build" {}
task "test" {}
`)
	require.NoError(t, err)
	require.Len(t, model.Tasks, 3)
	assert.Empty(t, model.Tasks[0].Commands)
	assert.Equal(t, []string{"build", "test"}, model.Tasks[0].DependsOn)
	assert.Empty(t, model.DefaultTarget)
}

func TestLoad_CommandsMustBeStringList(t *testing.T) {
	t.Parallel()

	_, err := loadString(t, `
task "build" {
  commands = { not = "a list" }
}
`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "commands must be a list of strings")
}

func TestLoad_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := loadString(t, `task "build" {`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse taskfile")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	assert.Error(t, err)
}
