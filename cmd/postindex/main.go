package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/postindex/internal/config"
	"github.com/jorge-barreto/postindex/internal/index"
	"github.com/jorge-barreto/postindex/internal/logging"
	"github.com/jorge-barreto/postindex/internal/posts"
	"github.com/jorge-barreto/postindex/internal/ux"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// exitFatal is the process status for any failed run.
const exitFatal = 2

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(ctx, args); err != nil {
		ux.Error(stderr, err)
		return exitFatal
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "postindex",
		Usage: "Generate posts.json from the markdown posts directory",
		Description: "Scans <root>/posts for markdown posts and writes a sorted {slug, title} index\n" +
			"to <root>/posts.json, only when its content changed. Paths and collation locale\n" +
			"can be overridden in <root>/" + config.FileName + ".",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Usage:   "project root (default: parent of the directory holding the executable)",
				Sources: cli.EnvVars("POSTINDEX_ROOT"),
			},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log skipped and unreadable entries"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unexpected argument %q", cmd.Args().First())
			}

			root := cmd.String("root")
			if root == "" {
				r, err := defaultRoot()
				if err != nil {
					return err
				}
				root = r
			}

			log, err := logging.New(cmd.Bool("verbose"))
			if err != nil {
				return err
			}
			defer log.Sync()

			res, err := generate(root, log)
			if err != nil {
				return err
			}
			ux.Outcome(stdout, res)
			return nil
		},
	}
}

// generate rebuilds the index for the project at root.
func generate(root string, log *zap.Logger) (index.Result, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return index.Result{}, fmt.Errorf("loading config: %w", err)
	}
	collator, err := posts.NewCollator(cfg.Locale)
	if err != nil {
		return index.Result{}, fmt.Errorf("loading config: %w", err)
	}

	postsDir := cfg.PostsPath(root)
	list := posts.Gather(postsDir, posts.WithLogger(log), posts.WithCollator(collator))
	log.Debug("gathered posts", zap.String("dir", postsDir), zap.Int("count", len(list)))

	return index.WriteIfChanged(cfg.OutputPath(root), list)
}

// defaultRoot resolves the project root from the executable's location: the
// tool is expected to live one directory below the root, e.g. <root>/bin.
func defaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
