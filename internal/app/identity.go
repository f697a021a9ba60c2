package app

import (
	"errors"
	"strings"

	"github.com/Egor213/RosoutDiag/internal/config"
	"github.com/google/uuid"
)

const anonymousSuffixLen = 12

var ErrEmptyNodeName = errors.New("node name must be specified")

// ResolveIdentity builds the global node name the relay registers under and
// filters its own records by. newID is only consulted for anonymous nodes.
func ResolveIdentity(node config.Node, newID func() uuid.UUID) (string, error) {
	name := strings.Trim(strings.TrimSpace(node.Name), "/")
	if name == "" {
		return "", ErrEmptyNodeName
	}

	identity := "/" + name
	if node.Anonymous {
		suffix := strings.ReplaceAll(newID().String(), "-", "")
		identity += "_" + suffix[:anonymousSuffixLen]
	}
	return identity, nil
}
