package engine

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-compose/internal/types"
	"github.com/rxtech-lab/argo-compose/internal/version"
	"github.com/rxtech-lab/argo-compose/pkg/errors"
)

type ComposerV1Config struct {
	StrategyName string `yaml:"strategy_name" json:"strategy_name" validate:"required" jsonschema:"title=Strategy Name,description=Name of the composed strategy used in logs and diagnostics"`
	// EquityMethod selects how collaborators value the portfolio when the
	// strategy asks for current equity.
	EquityMethod types.EquityMethod `yaml:"equity_method" json:"equity_method" validate:"required,oneof=cash_only total risk_adjusted initial" jsonschema:"title=Equity Method,description=Portfolio valuation method exposed to sizing components"`
	// WarmUpPeriods is the number of historical bars replayed through the
	// components before live evaluation begins.
	WarmUpPeriods int `yaml:"warm_up_periods" json:"warm_up_periods" validate:"gte=0" jsonschema:"title=Warm Up Periods,description=Number of historical bars replayed before live evaluation,minimum=0"`
	// MinEngineVersion declares the oldest engine this configuration is known
	// to work with. Empty means no constraint.
	MinEngineVersion string `yaml:"min_engine_version" json:"min_engine_version" jsonschema:"title=Minimum Engine Version,description=Oldest compatible engine version (semver)"`
}

// Validate checks the configuration fields and the engine version constraint.
func (c *ComposerV1Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid composer config", err)
	}

	if err := version.CheckMinimumVersion(version.GetVersion(), c.MinEngineVersion); err != nil {
		return err
	}

	return nil
}

// GenerateSchema generates a JSON schema for the ComposerV1Config.
func (c *ComposerV1Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if strings.Contains(t.String(), "types.EquityMethod") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: types.AllEquityMethods,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)

	schema.Title = "composer-v1-config"
	schema.Description = "Configuration schema for ComposerV1"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the ComposerV1Config.
func (c *ComposerV1Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// EmptyConfig returns a ComposerV1Config with default values.
func EmptyConfig() ComposerV1Config {
	return ComposerV1Config{
		StrategyName:     "",
		EquityMethod:     types.EquityMethodTotal,
		WarmUpPeriods:    0,
		MinEngineVersion: "",
	}
}

// TestConfig returns a valid configuration for tests.
func TestConfig(strategyName string) ComposerV1Config {
	return ComposerV1Config{
		StrategyName:     strategyName,
		EquityMethod:     types.EquityMethodTotal,
		WarmUpPeriods:    20,
		MinEngineVersion: "",
	}
}
