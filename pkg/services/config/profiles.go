package config

import (
	"context"
	"fmt"

	"github.com/de-tools/sku-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Profile is one section of the sources file. Beyond the mandatory platform
// key, every platform reads its own keys (path, bucket, host, ...).
type Profile struct {
	Name     string
	Platform string

	section *ini.Section
}

// Key returns the raw value of an ini key, empty when unset.
func (p Profile) Key(name string) string {
	if p.section == nil {
		return ""
	}
	return p.section.Key(name).String()
}

// Registry reads dataset source profiles from an ini file, one section per
// profile.
type Registry interface {
	GetProfiles(ctx context.Context) ([]domain.SourceProfile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load sources file: %w", err)
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]domain.SourceProfile, error) {
	var profiles []domain.SourceProfile
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		profiles = append(profiles, domain.SourceProfile{
			Name:     section.Name(),
			Platform: section.Key("platform").String(),
		})
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}

	platform := section.Key("platform").String()
	if platform == "" {
		return Profile{}, fmt.Errorf("profile %s does not declare a platform", name)
	}

	return Profile{
		Name:     name,
		Platform: platform,
		section:  section,
	}, nil
}
