package configs

// Auth configures HS256 bearer tokens. The token subject is taken as the
// caller identity. Operator names the identity allowed to verify publishers
// and report campaign outcomes.
type Auth struct {
	Secret   string `env:"SECRET,required,notEmpty"`
	Issuer   string `env:"ISSUER" envDefault:"mesa-auction"`
	Operator string `env:"OPERATOR" envDefault:"operator"`
}
