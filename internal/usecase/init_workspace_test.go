package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/kata/internal/domain"
)

type recordingInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (r *recordingInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	r.spec = spec
	r.force = force
	return nil
}

func TestInitWorkspace_Delegates(t *testing.T) {
	rec := &recordingInitializer{}
	require.NoError(t, NewInitWorkspace(rec).Execute("/tmp/ws", true))
	require.Equal(t, "/tmp/ws", rec.spec.Root)
	require.True(t, rec.force)
}
