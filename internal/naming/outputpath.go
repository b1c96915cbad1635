package naming

import "path/filepath"

// GetOutputPath builds the destination of a remapped file:
//
//	<root>/Actor_<NN>/<unified filename>
func GetOutputPath(u UnifiedName, root string) string {
	return filepath.Join(root, u.ActorDir(), u.Filename())
}
