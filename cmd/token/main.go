// Command token prints an operator access token for the admin API
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/interviewmail/backend/internal/auth"
	"github.com/interviewmail/backend/internal/config"
	flag "github.com/spf13/pflag"
)

var roles = map[string]int{
	"viewer":   auth.RoleViewer,
	"operator": auth.RoleOperator,
	"admin":    auth.RoleAdmin,
}

func main() {
	name := flag.StringP("name", "n", "", "operator name stored in the token")
	role := flag.StringP("role", "r", "operator", "operator role: viewer, operator or admin")
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "--name is required")
		flag.Usage()
		os.Exit(2)
	}
	roleValue, ok := roles[*role]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown role %q\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	tg := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	token, err := tg.GenerateAccessToken(*name, roleValue)
	if err != nil {
		log.Fatalf("Failed to generate token: %v\n", err)
	}
	fmt.Println(token)
}
