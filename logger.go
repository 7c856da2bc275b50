package avl

import (
	"github.com/sirupsen/logrus"
)

// Log is the logger used by trees that were created without WithLogger.
// Rebalancing is reported at debug level only.
var Log = logrus.New()

func (t *Tree[K, V]) debugEnabled() bool {
	return t.log != nil && t.log.IsLevelEnabled(logrus.DebugLevel)
}

func (t *Tree[K, V]) logRotation(grandparent, parent *node[K, V], dir direction) {
	if !t.debugEnabled() {
		return
	}

	t.log.WithFields(logrus.Fields{
		"direction":   dir.String(),
		"grandparent": grandparent.key,
		"parent":      parent.key,
	}).Debug("rotate")
}
