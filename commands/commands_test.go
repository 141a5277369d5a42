package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/mobilpaybundle/lib/myuuid"
)

const configYAML = `
netopia_mobilpay:
  payment_url: '%netopia_mobilpay.sandbox_payment_url%'
  public_cert: certs/sandbox.public.cer
  private_key: certs/sandbox.private.key
  signature: '%env(MOBILPAY_TEST_SIGNATURE)%'
  confirm_url: https://shop.example.com/mobilpay/confirm
  return_url: '@@home'
`

func writeProject(t *testing.T, config string) string {
	rootDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "config", "packages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, defaultConfigFile), []byte(config), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, ".env"), []byte("MOBILPAY_TEST_SIGNATURE=ABCD-1234\n"), 0o600))
	return rootDir
}

func run(t *testing.T, uuider myuuid.UUIDer, args ...string) (string, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand(uuider)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uuider := myuuid.NewMockUUIDer(ctrl)
	uuider.EXPECT().Create().Return("boot-123").AnyTimes()

	t.Run("check", func(t *testing.T) {
		rootDir := writeProject(t, configYAML)

		stdout, stderr, err := run(t, uuider, "check", "--root-dir", rootDir, "--env-file", ".env")
		require.NoError(t, err)
		assert.Equal(t, "OK: 1 service definition(s), 10 parameter(s) (boot boot-123)\n", stdout)
		assert.Contains(t, stderr, "kernel - INFO - Container compiled with 1 service definition(s)")
	})

	t.Run("check with missing option", func(t *testing.T) {
		rootDir := writeProject(t, "netopia_mobilpay:\n  payment_url: https://secure.mobilpay.ro\n")

		_, stderr, err := run(t, uuider, "check", "--root-dir", rootDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid configuration for path "netopia_mobilpay.public_cert": value is required`)
		assert.Contains(t, stderr, "Error:")
	})

	t.Run("check with missing environment variable", func(t *testing.T) {
		rootDir := writeProject(t, configYAML)

		_, _, err := run(t, uuider, "check", "--root-dir", rootDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MOBILPAY_TEST_SIGNATURE")
	})

	t.Run("check with missing config file", func(t *testing.T) {
		_, _, err := run(t, uuider, "check", "--root-dir", t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("debug:container", func(t *testing.T) {
		rootDir := writeProject(t, configYAML)

		stdout, _, err := run(t, uuider, "debug:container", "--root-dir", rootDir, "--env-file", ".env")
		require.NoError(t, err)
		assert.Contains(t, stdout, "netopia_mobilpay.payment  mobilpay.PaymentService")
		assert.Contains(t, stdout, `alias for "netopia_mobilpay.payment"`)
	})

	t.Run("debug:parameters", func(t *testing.T) {
		rootDir := writeProject(t, configYAML)

		stdout, _, err := run(t, uuider, "debug:parameters", "--root-dir", rootDir, "--env-file", ".env")
		require.NoError(t, err)
		assert.Contains(t, stdout, "netopia_mobilpay.payment_url")
		assert.Contains(t, stdout, "https://sandboxsecure.mobilpay.ro")
		assert.Contains(t, stdout, "ABCD-1234")
		assert.Contains(t, stdout, filepath.Join(rootDir, "src"))
	})

	t.Run("debug:config", func(t *testing.T) {
		rootDir := writeProject(t, configYAML)
		override := filepath.Join(rootDir, "override.yaml")
		require.NoError(t, os.WriteFile(override, []byte("netopia_mobilpay:\n  signature: OVERRIDE\n"), 0o600))

		stdout, _, err := run(t, uuider, "debug:config", "--root-dir", rootDir, "-c", defaultConfigFile, "-c", "override.yaml")
		require.NoError(t, err)
		assert.Contains(t, stdout, "netopia_mobilpay.signature: OVERRIDE\n")
		assert.Contains(t, stdout, "netopia_mobilpay.return_url: @@home\n")
	})
}
