package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/MarcGrol/mobilpaybundle/lib/mycontainer"
	"github.com/MarcGrol/mobilpaybundle/lib/mycontext"
	"github.com/MarcGrol/mobilpaybundle/lib/mykernel"
	"github.com/MarcGrol/mobilpaybundle/lib/mylog"
	"github.com/MarcGrol/mobilpaybundle/lib/myuuid"
	"github.com/MarcGrol/mobilpaybundle/services/mobilpay"
)

type application struct {
	opts   *Options
	uuider myuuid.UUIDer
}

func (a *application) rootDir() (string, error) {
	if a.opts.RootDir != "" {
		return filepath.Abs(a.opts.RootDir)
	}
	return os.Getwd()
}

func (a *application) bootContext(c context.Context) (context.Context, string) {
	traceID := a.uuider.Create()
	return mycontext.NewBootContext(c, os.Getenv("GOOGLE_CLOUD_PROJECT"), traceID), traceID
}

// lookupEnv prefers variables from the env file over the process environment.
func (a *application) lookupEnv(rootDir string) (mycontainer.LookupEnvFunc, error) {
	if a.opts.EnvFile == "" {
		return os.LookupEnv, nil
	}

	vars, err := godotenv.Read(resolvePath(rootDir, a.opts.EnvFile))
	if err != nil {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}

	return func(key string) (string, bool) {
		if value, found := vars[key]; found {
			return value, true
		}
		return os.LookupEnv(key)
	}, nil
}

// kernel creates a kernel with the configuration files loaded but not yet booted.
func (a *application) kernel(logOut io.Writer) (*mykernel.Kernel, string, error) {
	rootDir, err := a.rootDir()
	if err != nil {
		return nil, "", fmt.Errorf("error determining root dir: %w", err)
	}

	k := mykernel.New(rootDir, mux.NewRouter(), mylog.NewWriterLogger("mobilpay", logOut), mobilpay.NewExtension())
	for _, file := range a.opts.ConfigFiles {
		err = k.LoadConfigFile(resolvePath(rootDir, file))
		if err != nil {
			return nil, "", err
		}
	}

	return k, rootDir, nil
}

func (a *application) boot(c context.Context, logOut io.Writer) (*mycontainer.Container, string, error) {
	k, rootDir, err := a.kernel(logOut)
	if err != nil {
		return nil, "", err
	}

	lookupEnv, err := a.lookupEnv(rootDir)
	if err != nil {
		return nil, "", err
	}

	c, traceID := a.bootContext(c)
	container, err := k.Boot(c, lookupEnv)
	if err != nil {
		return nil, "", err
	}

	return container, traceID, nil
}

func resolvePath(rootDir string, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
