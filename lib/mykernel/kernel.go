// Package mykernel boots an application: it feeds the application configuration to the
// registered bundles and compiles the resulting service container.
package mykernel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gorilla/mux"
	"gopkg.in/yaml.v3"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/lib/myerrors"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
)

const (
	RouterServiceID = "router"
	LoggerServiceID = "logger"

	RootDirParameter    = "kernel.root_dir"
	ProjectDirParameter = "kernel.project_dir"
)

type Kernel struct {
	rootDir string
	router  *mux.Router
	logger  mylog.Logger
	bundles []Bundle
	configs map[string][]map[string]any
}

func New(rootDir string, router *mux.Router, logger mylog.Logger, bundles ...Bundle) *Kernel {
	k := &Kernel{
		rootDir: rootDir,
		router:  router,
		logger:  logger,
		configs: map[string][]map[string]any{},
	}
	for _, bundle := range bundles {
		for _, existing := range k.bundles {
			if existing.Alias() == bundle.Alias() {
				panic(fmt.Sprintf("bundle %s registered twice", bundle.Alias()))
			}
		}
		k.bundles = append(k.bundles, bundle)
		k.configs[bundle.Alias()] = nil
	}
	return k
}

// AddConfig appends a configuration fragment for the bundle with the given alias.
func (k *Kernel) AddConfig(alias string, config map[string]any) error {
	if _, found := k.configs[alias]; !found {
		return myerrors.NewInvalidInputErrorf("there is no bundle able to load the configuration for %q, known bundles are %v", alias, k.aliases())
	}
	if config == nil {
		config = map[string]any{}
	}
	k.configs[alias] = append(k.configs[alias], config)
	return nil
}

// LoadConfig reads a YAML document whose top-level keys are bundle aliases.
func (k *Kernel) LoadConfig(name string, data []byte) error {
	document := map[string]map[string]any{}
	err := yaml.Unmarshal(data, &document)
	if err != nil {
		return myerrors.NewInvalidInputErrorf("error parsing %s: %s", name, err)
	}

	for _, alias := range sortedKeys(document) {
		err = k.AddConfig(alias, document[alias])
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
	}
	return nil
}

func (k *Kernel) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return myerrors.NewNotFoundError(fmt.Errorf("error reading config file: %w", err))
	}
	return k.LoadConfig(filepath.Base(path), data)
}

// Configs returns the fragments collected so far for a bundle, in load order.
func (k *Kernel) Configs(alias string) []map[string]any {
	return k.configs[alias]
}

// Boot builds and compiles a fresh container. A nil lookupEnv uses the process environment.
func (k *Kernel) Boot(c context.Context, lookupEnv mycontainer.LookupEnvFunc) (*mycontainer.Container, error) {
	container := mycontainer.New()
	container.SetParameter(ProjectDirParameter, k.rootDir)
	container.SetParameter(RootDirParameter, filepath.Join(k.rootDir, "src"))
	container.Set(RouterServiceID, k.router)
	container.Set(LoggerServiceID, k.logger)

	for _, bundle := range k.bundles {
		bundle.Build(container)
	}

	for _, bundle := range k.bundles {
		k.logger.Log(c, bundle.Alias(), mylog.SeverityDebug, "Loading bundle with %d configuration fragment(s)", len(k.configs[bundle.Alias()]))
		err := bundle.Load(c, k.configs[bundle.Alias()], container)
		if err != nil {
			return nil, fmt.Errorf("error loading bundle %s: %w", bundle.Alias(), err)
		}
	}

	err := container.Compile(lookupEnv)
	if err != nil {
		return nil, fmt.Errorf("error compiling container: %w", err)
	}

	k.logger.Log(c, "kernel", mylog.SeverityInfo, "Container compiled with %d service definition(s)", len(container.Definitions()))

	return container, nil
}

func (k *Kernel) aliases() []string {
	aliases := make([]string, 0, len(k.bundles))
	for _, bundle := range k.bundles {
		aliases = append(aliases, bundle.Alias())
	}
	sort.Strings(aliases)
	return aliases
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
