package commands

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"code.cloudfoundry.org/lager"
	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"

	"github.com/technical-param/password-checker-web/api"
	"github.com/technical-param/password-checker-web/config"
	"github.com/technical-param/password-checker-web/strength"
)

type ServeCommand struct {
	ConfigFile string `long:"config-file" description:"path to yaml config file" value-name:"PATH"`
	Debug      bool   `long:"debug" description:"enables debug logging"`

	*config.ServeConfig
}

func (command *ServeCommand) Execute(args []string) error {
	logger := lager.NewLogger("serve")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))
	}

	if command.ConfigFile != "" {
		bs, err := os.ReadFile(command.ConfigFile)
		if err != nil {
			return err
		}
		if err := command.ServeConfig.Overlay(bs); err != nil {
			return err
		}
	}

	if errs := command.ServeConfig.Validate(); len(errs) > 0 {
		var result error
		for _, err := range errs {
			result = multierror.Append(result, err)
		}
		return result
	}

	evaluator, err := buildEvaluator(
		command.WordlistPath,
		command.HIBP.Disabled,
		command.HIBP.BaseURL,
		command.HIBP.Timeout,
	)
	if err != nil {
		return err
	}

	holder := newReloadingEvaluator(evaluator)

	if command.WordlistPath != "" {
		err = watchWordlist(logger, command.WordlistPath, func() {
			rebuilt, err := buildEvaluator(
				command.WordlistPath,
				command.HIBP.Disabled,
				command.HIBP.BaseURL,
				command.HIBP.Timeout,
			)
			if err != nil {
				logger.Error("wordlist-reload-failed", err)
				return
			}

			holder.Store(rebuilt)
			logger.Info("wordlist-reloaded", lager.Data{"path": command.WordlistPath})
		})
		if err != nil {
			return err
		}
	}

	router, err := api.NewRouter(logger, holder)
	if err != nil {
		return err
	}

	address := fmt.Sprintf("%s:%d", command.BindIP, command.BindPort)
	logger.Info("listening", lager.Data{"address": address})

	return http.ListenAndServe(address, router)
}

// reloadingEvaluator lets the wordlist watcher swap the evaluator under
// in-flight requests without locking.
type reloadingEvaluator struct {
	current atomic.Value
}

func newReloadingEvaluator(evaluator *strength.Evaluator) *reloadingEvaluator {
	holder := &reloadingEvaluator{}
	holder.Store(evaluator)
	return holder
}

func (r *reloadingEvaluator) Store(evaluator *strength.Evaluator) {
	r.current.Store(evaluator)
}

func (r *reloadingEvaluator) Evaluate(logger lager.Logger, password string) strength.Result {
	return r.current.Load().(*strength.Evaluator).Evaluate(logger, password)
}

// watchWordlist watches the wordlist's directory, since editors typically
// replace the file rather than write it in place.
func watchWordlist(logger lager.Logger, path string, reload func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	base := filepath.Base(path)

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("wordlist-watch-failed", err)
			}
		}
	}()

	return nil
}
