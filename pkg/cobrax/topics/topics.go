// Package topics adds file-based help topics to a cobra command tree.
// Topics are read from an fs.FS, typically embedded in the binary, and shown
// with "help <topic>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// TopicManager holds the topics of one command tree
type TopicManager struct {
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help document
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions considered as topics, [".txt", ".md"] by default
	Extensions []string

	// Renderer for topic content, PlainRenderer by default
	Renderer Renderer
}

// Load scans fsys for topic files
func Load(fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := &TopicManager{
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !tm.supported(path.Ext(p)) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return tm, nil
}

func (tm *TopicManager) supported(ext string) bool {
	for _, e := range tm.extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// GetTopic finds a topic by name. Flag-style names ("--save") also match
// "option-save".
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := tm.topics[name]; ok {
		return t, true
	}
	t, ok := tm.topics["option-"+name]
	return t, ok
}

// ListTopics returns the topic names in order
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render writes a topic to w
func (tm *TopicManager) Render(w io.Writer, t *Topic) {
	fmt.Fprint(w, tm.renderer.Render(t.Content, t.Ext))
}

func (tm *TopicManager) printList(w io.Writer, app string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, "option-") {
			options = append(options, strings.TrimPrefix(name, "option-"))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces rootCmd's help command with one that also knows the
// topics. Call it once every other command has been added.
func (tm *TopicManager) Install(rootCmd *cobra.Command) {
	defaultHelp := rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + rootCmd.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				defaultHelp(rootCmd, nil)
			case args[0] == "topics":
				tm.printList(out, rootCmd.Name())
			default:
				if t, ok := tm.GetTopic(args[0]); ok {
					tm.Render(out, t)
					return
				}
				target, _, err := rootCmd.Find(args)
				if err != nil || target == nil {
					target = rootCmd
				}
				defaultHelp(target, args)
			}
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
}
