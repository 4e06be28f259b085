package output

import (
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
)

// dirNode is an intermediate directory while building a file tree.
type dirNode struct {
	dirs  map[string]*dirNode
	files []string
}

func newDirNode() *dirNode {
	return &dirNode{dirs: map[string]*dirNode{}}
}

// RenderFileTree renders slash-separated relative file paths as a tree under
// rootName. Directories are listed before files, each group alphabetically.
// describe may be nil; otherwise its result is shown dimmed after each file.
func RenderFileTree(rootName string, files []string, describe func(string) string) string {
	if len(files) == 0 {
		return ""
	}

	root := newDirNode()
	for _, f := range files {
		parts := strings.Split(path.Clean(f), "/")
		current := root
		for _, dir := range parts[:len(parts)-1] {
			next, ok := current.dirs[dir]
			if !ok {
				next = newDirNode()
				current.dirs[dir] = next
			}
			current = next
		}
		current.files = append(current.files, f)
	}

	styles := GetStyles()
	t := tree.Root(styles.Bold.Render(strings.TrimSuffix(rootName, "/") + "/")).
		EnumeratorStyle(styles.Branch)
	addChildren(t, root, describe)
	return t.String() + "\n"
}

func addChildren(t *tree.Tree, node *dirNode, describe func(string) string) {
	styles := GetStyles()

	names := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sub := tree.Root(name + "/").EnumeratorStyle(styles.Branch)
		addChildren(sub, node.dirs[name], describe)
		t.Child(sub)
	}

	sort.Strings(node.files)
	for _, f := range node.files {
		label := path.Base(f)
		if describe != nil {
			if d := describe(f); d != "" {
				label += "  " + styles.Muted.Render(d)
			}
		}
		t.Child(label)
	}
}
