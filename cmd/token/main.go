// Command token mints a bearer token for calling the booking API, signed with
// the server's JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"booking-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

type tokenConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func main() {
	role := flag.String("role", string(jwt.RoleOperator), "viewer, operator or admin")
	subject := flag.String("subject", "", "staff member id (random when empty)")
	flag.Parse()

	if err := run(jwt.Role(*role), *subject); err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		os.Exit(1)
	}
}

func run(role jwt.Role, subject string) error {
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", role)
	}

	var cfg tokenConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return fmt.Errorf("invalid JWT_DURATION: %w", err)
	}

	id := uuid.New()
	if subject != "" {
		if id, err = uuid.Parse(subject); err != nil {
			return fmt.Errorf("invalid subject: %w", err)
		}
	}

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(id, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
