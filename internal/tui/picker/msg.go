package picker

import "github.com/arun-karra/release-notes/internal/domain"

// Msg is the interface for all picker messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgLabelsLoaded is sent when release labels are loaded from the tracker.
//
//nolint:govet // Logical field order preferred
type MsgLabelsLoaded struct {
	Labels []domain.ReleaseLabel
	Err    error
}

func (MsgLabelsLoaded) sealed() {}
