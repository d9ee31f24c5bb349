// Command levelcheck validates level files against the entity registry and
// the configured game-space limits.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/dww100/untitled-penguin-game/entity"
	"github.com/dww100/untitled-penguin-game/level"
	"github.com/dww100/untitled-penguin-game/settings"
)

func main() {
	levelsDir := flag.String("levels", "levels", "directory of level .txt files (ignored when files are given as args)")
	specsDir := flag.String("specs", "", "directory of entity spec .yaml files to register")
	settingsPath := flag.String("settings", "", "settings .yaml file (default: built-in 12x12 game space)")
	legend := flag.Bool("legend", false, "print the symbol legend and exit")
	watch := flag.Bool("watch", false, "keep running and re-check on file changes")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	reg, err := buildRegistry(*specsDir)
	if err != nil {
		log.WithError(err).Fatal("register entity specs")
	}

	if *legend {
		printLegend(reg)
		return
	}

	cfg := settings.Default()
	if *settingsPath != "" {
		var err error
		if cfg, err = settings.Load(*settingsPath); err != nil {
			log.WithError(err).Fatal("load settings")
		}
	}
	lim := level.Limits{MaxWidth: cfg.MaxGridWidth, MaxHeight: cfg.MaxGridHeight}

	files, err := levelFiles(*levelsDir, flag.Args())
	if err != nil {
		log.WithError(err).Fatal("find level files")
	}
	if len(files) == 0 {
		log.Fatalf("no level files under %s", *levelsDir)
	}

	ok := checkAll(log, files, reg, lim)

	if *watch {
		watchLoop(log, *levelsDir, *specsDir, flag.Args(), lim)
		return
	}
	if !ok {
		os.Exit(1)
	}
}

func buildRegistry(specsDir string) (*entity.Registry, error) {
	reg := entity.NewRegistry()
	if specsDir != "" {
		if err := entity.RegisterSpecs(os.DirFS(specsDir), reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func levelFiles(dir string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func checkAll(log *logrus.Logger, files []string, reg *entity.Registry, lim level.Limits) bool {
	ok := true
	for _, f := range files {
		if !check(log, f, reg, lim) {
			ok = false
		}
	}
	return ok
}

func check(log *logrus.Logger, path string, reg *entity.Registry, lim level.Limits) bool {
	lvl, err := level.Load(path, reg, lim)
	if err != nil {
		log.WithError(err).Errorf("%s: invalid", path)
		return false
	}

	bounded := lvl.Bounded()
	entry := log.WithField("game", fmt.Sprintf("%dx%d", bounded.Width, bounded.Height))

	if starts := lvl.PlayerStarts(); len(starts) != 1 {
		entry.Warnf("%s: ok, but %d player starts", path, len(starts))
	} else {
		entry.Infof("%s: ok", path)
	}
	log.Debugf("%s: %d enemies, %d blocks, %d diamonds, %d eggs", path,
		lvl.Count(entity.Enemy), lvl.Count(entity.Block), lvl.Count(entity.Diamond), lvl.Count(entity.Egg))
	return true
}

func watchLoop(log *logrus.Logger, levelsDir, specsDir string, args []string, lim level.Limits) {
	dirs := []string{levelsDir}
	if specsDir != "" {
		dirs = append(dirs, specsDir)
	}
	w, err := level.NewWatcher(dirs...)
	if err != nil {
		log.WithError(err).Fatal("start watcher")
	}
	defer w.Close()

	log.Infof("watching %v", dirs)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			log.Debugf("%s changed", name)
			// Specs and the set of level files may both have changed, so
			// rebuild the registry and re-glob each pass.
			reg, err := buildRegistry(specsDir)
			if err != nil {
				log.WithError(err).Error("register entity specs")
				continue
			}
			files, err := levelFiles(levelsDir, args)
			if err != nil {
				log.WithError(err).Error("find level files")
				continue
			}
			checkAll(log, files, reg, lim)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.WithError(err).Error("watch")
		}
	}
}

func printLegend(reg *entity.Registry) {
	for _, d := range reg.Descriptors() {
		fmt.Printf("%c  %s\n", d.Symbol, d.Name)
	}
}
