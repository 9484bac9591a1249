package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eskwela/admin/core/user"
)

func TestCLI_dump(t *testing.T) {
	var out bytes.Buffer
	cli := &commandLine{out: &out}

	err := cli.run([]string{"admin", "dump", "-entity", "users", "-count", "5", "-seed", "3"})
	assert.NoError(t, err)

	var users []user.User
	assert.NoError(t, json.Unmarshal(out.Bytes(), &users))
	assert.Len(t, users, 5)

	// same seed and count print the same pool
	var again bytes.Buffer
	err = (&commandLine{out: &again}).run([]string{"admin", "dump", "-entity", "users", "-count", "5", "-seed", "3"})
	assert.NoError(t, err)
	assert.Equal(t, out.String(), again.String())
}

func TestCLI_dumpUnknownEntity(t *testing.T) {
	var out bytes.Buffer
	cli := &commandLine{out: &out}

	err := cli.run([]string{"admin", "dump", "-entity", "grades"})
	assert.EqualError(t, err, `unknown entity "grades"`)
}

func TestCLI_help(t *testing.T) {
	cli := &commandLine{out: &bytes.Buffer{}}
	assert.Equal(t, errHelp, cli.run([]string{"admin"}))
	assert.Equal(t, errHelp, cli.run([]string{"admin", "bogus"}))
}
