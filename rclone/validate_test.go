package rclone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeStore struct {
	description string
	err         error
}

func (s *fakeStore) ListRemotes(ctx context.Context) ([]string, error) {
	return nil, s.err
}

func (s *fakeStore) Describe(ctx context.Context, remote string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.description, nil
}

func Test_IsUsable_localWithoutStore(t *testing.T) {
	assert := assert.New(t)

	// "local" never consults the store, even when none is set
	assert.True(IsUsable(context.Background(), nil, "local"))
}

func Test_IsUsable_describedRemote(t *testing.T) {
	assert := assert.New(t)

	store := &fakeStore{description: "[gdrive]\ntype = drive\nscope = drive\n"}

	assert.True(IsUsable(context.Background(), store, "gdrive"))
}

func Test_IsUsable_describeFails(t *testing.T) {
	assert := assert.New(t)

	store := &fakeStore{err: &ConfigError{Remote: "badremote", Err: errors.New("section not found")}}

	assert.False(IsUsable(context.Background(), store, "badremote"))
}

func Test_IsUsable_malformedDescription(t *testing.T) {
	assert := assert.New(t)

	store := &fakeStore{description: "garbage without a declaration"}

	assert.False(IsUsable(context.Background(), store, "weird"))
}

func Test_IsUsable_emptyDescription(t *testing.T) {
	assert := assert.New(t)

	store := &fakeStore{description: ""}

	assert.False(IsUsable(context.Background(), store, "empty"))
}
