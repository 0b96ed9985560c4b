package azblob

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/de-tools/sku-atlas/pkg/models/store"
	"github.com/de-tools/sku-atlas/pkg/services/config"
	"github.com/de-tools/sku-atlas/pkg/services/sources"
)

type source struct {
	name      string
	container string
	blob      string
	comma     rune
	client    *azblob.Client
}

// Factory creates an Azure Blob source from a profile. Keys: account_url,
// container, blob (all required), delimiter (optional). Credentials come from
// the default Azure credential chain (environment, managed identity, CLI).
func Factory(_ context.Context, profile config.Profile) (sources.Source, error) {
	accountURL := profile.Key("account_url")
	container := profile.Key("container")
	blob := profile.Key("blob")
	if accountURL == "" || container == "" || blob == "" {
		return nil, fmt.Errorf("profile %q needs account_url, container and blob", profile.Name)
	}

	comma, err := sources.Delimiter(profile)
	if err != nil {
		return nil, err
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Azure credentials: %w", err)
	}

	client, err := azblob.NewClient(accountURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob client for %s: %w", accountURL, err)
	}

	return &source{
		name:      profile.Name,
		container: container,
		blob:      blob,
		comma:     comma,
		client:    client,
	}, nil
}

func (s *source) Name() string { return s.name }

func (s *source) Fetch(ctx context.Context) (*store.RawTable, error) {
	resp, err := s.client.DownloadStream(ctx, s.container, s.blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to download blob %s/%s: %w", s.container, s.blob, err)
	}
	defer resp.Body.Close()

	table, err := sources.ReadCSV(resp.Body, s.comma)
	if err != nil {
		return nil, fmt.Errorf("failed to parse blob %s/%s: %w", s.container, s.blob, err)
	}
	return table, nil
}
