package models

import (
	"io/ioutil"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/shopspring/decimal"
	yaml "gopkg.in/yaml.v2"
)

// MembershipsCacheKey indexes the public plan list in redis.
const MembershipsCacheKey = "public:memberships"

type SeedRule struct {
	Level      int    `yaml:"level"`
	Commission string `yaml:"commission"`
}

type SeedMembership struct {
	Name        string     `yaml:"name"`
	Price       string     `yaml:"price"`
	Description string     `yaml:"description"`
	Rules       []SeedRule `yaml:"rules"`
}

type SeedFile struct {
	Memberships []SeedMembership `yaml:"memberships"`
}

// LoadSeeds upserts memberships and their commission schedules from a YAML
// file. Existing memberships keep their ids; their schedules are replaced.
func LoadSeeds(path string) error {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	var seeds SeedFile
	if err := yaml.Unmarshal(raw, &seeds); err != nil {
		return err
	}

	for _, entry := range seeds.Memberships {
		price, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return err
		}

		var membership *Membership
		config.DataBase.FirstOrCreate(&membership, Membership{Name: entry.Name})

		membership.Price = price
		membership.Description = entry.Description
		if err := config.DataBase.Save(membership).Error; err != nil {
			return err
		}

		if err := config.DataBase.Where("membership_id = ?", membership.ID).Delete(&CommissionRule{}).Error; err != nil {
			return err
		}

		for _, rule := range entry.Rules {
			commission, err := decimal.NewFromString(rule.Commission)
			if err != nil {
				return err
			}

			record := &CommissionRule{
				MembershipID: membership.ID,
				Level:        rule.Level,
				Commission:   commission,
			}
			if err := config.DataBase.Create(record).Error; err != nil {
				return err
			}
		}
	}

	// Reseeding changes what the public listing must serve.
	if config.Redis != nil {
		if err := config.Redis.DeleteKey(MembershipsCacheKey); err != nil {
			config.Logger.Warnf("Failed to invalidate membership cache: %v", err)
		}
	}

	return nil
}
