package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/born-ml/probability/distributions"
	"github.com/born-ml/probability/tensor"
)

// Profile is the effective set of distribution parameters, merged from the
// config file, GAMMA_* environment variables and flags.
type Profile struct {
	Name   string    `yaml:"name" mapstructure:"name"`
	DType  string    `yaml:"dtype" mapstructure:"dtype"`
	Alpha  []float64 `yaml:"alpha" mapstructure:"alpha"`
	Beta   []float64 `yaml:"beta" mapstructure:"beta"`
	X      []float64 `yaml:"x,omitempty" mapstructure:"x"`
	Fn     []string  `yaml:"fn,omitempty" mapstructure:"fn"`
	Output string    `yaml:"output" mapstructure:"output"`
}

// DefaultProfile returns the profile used when nothing is configured.
func DefaultProfile() Profile {
	return Profile{
		Name:   "Gamma",
		DType:  "float64",
		Fn:     []string{"pdf"},
		Output: "table",
	}
}

// loadProfile decodes the merged viper settings. Comma separated strings
// from flags or env decode into lists.
func loadProfile(v *viper.Viper) (Profile, error) {
	p := DefaultProfile()
	if err := v.Unmarshal(&p); err != nil {
		return Profile{}, errors.Wrap(err, "decode profile")
	}
	if p.Name == "" {
		p.Name = "Gamma"
	}
	if p.DType == "" {
		p.DType = "float64"
	}
	if p.Output == "" {
		p.Output = "table"
	}
	return p, nil
}

// dtype resolves the profile's dtype name.
func (p Profile) dtype() (tensor.DataType, error) {
	dt, ok := tensor.ParseDataType(p.DType)
	if !ok || !dt.IsFloat() {
		return 0, fmt.Errorf("unsupported dtype %q (want float32 or float64)", p.DType)
	}
	return dt, nil
}

// buildGamma constructs the distribution described by the profile.
func (p Profile) buildGamma(backend tensor.Backend) (*distributions.Gamma, error) {
	if len(p.Alpha) == 0 || len(p.Beta) == 0 {
		return nil, errors.New("alpha and beta are required (flags, GAMMA_ALPHA/GAMMA_BETA or config file)")
	}
	dt, err := p.dtype()
	if err != nil {
		return nil, err
	}

	alpha, err := toTensor(p.Alpha, listShape(p.Alpha), dt)
	if err != nil {
		return nil, errors.Wrap(err, "alpha")
	}
	beta, err := toTensor(p.Beta, listShape(p.Beta), dt)
	if err != nil {
		return nil, errors.Wrap(err, "beta")
	}

	g, err := distributions.NewGamma(alpha, beta, backend, distributions.WithName(p.Name))
	if err != nil {
		return nil, errors.Wrap(err, "build distribution")
	}
	return g, nil
}

// listShape treats a single value as a scalar and anything longer as a vector.
func listShape(values []float64) tensor.Shape {
	if len(values) == 1 {
		return tensor.Shape{}
	}
	return tensor.Shape{len(values)}
}

// toTensor converts values to a tensor of the requested float dtype.
func toTensor(values []float64, shape tensor.Shape, dt tensor.DataType) (*tensor.RawTensor, error) {
	if dt == tensor.Float32 {
		narrowed := make([]float32, len(values))
		for i, v := range values {
			narrowed[i] = float32(v)
		}
		return tensor.FromSlice(narrowed, shape)
	}
	return tensor.FromSlice(values, shape)
}
