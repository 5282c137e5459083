package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider reads configuration values from one KV v2 secret in HashiCorp Vault.
// The secret is fetched on the first lookup and served from memory afterwards, since
// startup reads every configuration key and the values do not change while running.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cache      *secretCache
}

type secretCache struct {
	mu   sync.Mutex
	data map[string]any
}

// NewVaultProvider creates a new VaultProvider.
//
// The server is the Vault address (e.g. "http://localhost:8200"), mountPath the KV
// mount (e.g. "secret") and secretPath the secret inside it (e.g. "chatgateway").
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, errors.New("server is required")
	case token == "":
		return VaultProvider{}, errors.New("token is required")
	case mountPath == "":
		return VaultProvider{}, errors.New("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, errors.New("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{},
	}, nil
}

// Get returns the string value stored under key.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	data, err := vp.secret(ctx)
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return strValue, nil
}

func (vp VaultProvider) secret(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.data != nil {
		return vp.cache.data, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	vp.cache.data = secret.Data
	return vp.cache.data, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider is used to initialize and register the VaultProvider.
// The session signing key and database credentials are expected in the secret.
type InitVaultProvider struct {
	Logger     *log.Logger `resolve:""`
	Server     string      `config:"VAULT_ADDR" default:""`
	Token      string      `config:"VAULT_TOKEN" default:""`
	MountPath  string      `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string      `config:"VAULT_SECRET_PATH" default:"chatgateway"`
}

// Initialize puts Vault behind the environment in the global config provider.
// Without a Vault address the process keeps reading its configuration from the environment only.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	if ivp.Server == "" {
		ivp.Logger.Println("InitVaultProvider: VAULT_ADDR not set, using environment variables only")
		return ctx, nil
	}

	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)
	ivp.Logger.Printf("InitVaultProvider: reading secrets from %s/%s", ivp.MountPath, ivp.SecretPath)

	return ctx, nil
}
