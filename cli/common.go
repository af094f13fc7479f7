package cli

import (
	"github.com/raako71/RClone-Diff/compare"
	"github.com/raako71/RClone-Diff/config"
	"github.com/raako71/RClone-Diff/rclone"
	"github.com/raako71/RClone-Diff/storage"
	fs "github.com/raako71/RClone-Diff/storage/fs"
	"github.com/raako71/RClone-Diff/storage/provider"
)

func newRunner() *rclone.Runner {
	global := config.GetInstance().Global()
	return rclone.NewRunner(global.RcloneBinary(), global.RcloneConfig())
}

// newSelector wires the configured native listers around the external
// binary fallback.
func newSelector(runner *rclone.Runner) *storage.Selector {
	listers := config.GetInstance().Listers()

	s3 := make(map[string]*provider.S3Lister)
	for remote, cfg := range listers.S3() {
		s3[remote] = &provider.S3Lister{
			Remote:         cfg.Remote,
			AccessKey:      cfg.AccessKey,
			SecretKey:      cfg.SecretKey,
			Token:          cfg.Token,
			Region:         cfg.Region,
			Endpoint:       cfg.Endpoint,
			ForcePathStyle: cfg.ForcePathStyle,
		}
	}

	return &storage.Selector{
		Fallback:    rclone.NewProvider(runner),
		LocalWalker: listers.LocalWalker(),
		S3:          s3,
	}
}

func newEngine(runner *rclone.Runner, fastList bool, excludes []string) *compare.Engine {
	return &compare.Engine{
		Listers: newSelector(runner),
		Options: fs.ListOptions{
			Recursive: true,
			FastList:  fastList,
			Excludes:  excludes,
		},
	}
}

func newOrchestrator(runner *rclone.Runner) *compare.Orchestrator {
	return &compare.Orchestrator{Executor: rclone.NewExecutor(runner)}
}
