package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/pflag"
)

const applicationName = "tokengen"

// options collects the flags for one generated token
type options struct {
	secret  string
	subject string
	email   string
	role    string
	hours   int
	extra   string // JSON object merged into the claims
	quiet   bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	flagSet.StringVar(&opts.secret, "secret", "your-256-bit-secret-key-min-32-bytes-here-for-demo!", "Secret key (minimum 32 bytes)")
	flagSet.StringVar(&opts.subject, "sub", "user123", "Subject (user ID)")
	flagSet.StringVar(&opts.email, "email", "user@example.com", "Email address")
	flagSet.StringVar(&opts.role, "role", "user", "User role")
	flagSet.IntVar(&opts.hours, "hours", 1, "Token validity in hours")
	flagSet.StringVar(&opts.extra, "claims", "", "Extra claims as a JSON object, e.g. '{\"tenant\":\"acme\"}'")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "Print only the token (for piping into jwtinfo -)")
	return flagSet
}

// buildClaims assembles the claim set; extra claims override the defaults
func buildClaims(opts options, now time.Time) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{
		"sub":   opts.subject,
		"email": opts.email,
		"role":  opts.role,
		"exp":   now.Add(time.Duration(opts.hours) * time.Hour).Unix(),
		"nbf":   now.Unix(),
		"iat":   now.Unix(),
	}

	if opts.extra != "" {
		var extra map[string]interface{}
		if err := json.Unmarshal([]byte(opts.extra), &extra); err != nil {
			return nil, fmt.Errorf("--claims must be a JSON object: %w", err)
		}
		for k, v := range extra {
			claims[k] = v
		}
	}

	return claims, nil
}

// generate signs an HS256 token for opts
func generate(opts options, now time.Time) (string, error) {
	if len(opts.secret) < 32 {
		return "", fmt.Errorf("secret must be at least 32 bytes")
	}

	claims, err := buildClaims(opts, now)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(opts.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func run(arguments []string, stdout, stderr io.Writer) int {
	var opts options
	flagSet := newFlagSet(&opts)
	flagSet.SetOutput(stderr)
	if err := flagSet.Parse(arguments); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	now := time.Now()
	tokenString, err := generate(opts, now)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if opts.quiet {
		fmt.Fprintln(stdout, tokenString)
		return 0
	}

	fmt.Fprintln(stdout, "\n=== JWT Token Generated ===")
	fmt.Fprintf(stdout, "\nToken: %s\n\n", tokenString)
	fmt.Fprintln(stdout, "Claims:")
	fmt.Fprintf(stdout, "  Subject: %s\n", opts.subject)
	fmt.Fprintf(stdout, "  Email:   %s\n", opts.email)
	fmt.Fprintf(stdout, "  Role:    %s\n", opts.role)
	fmt.Fprintf(stdout, "  Expires: %s\n\n", now.Add(time.Duration(opts.hours)*time.Hour).Format(time.RFC3339))
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  jwtinfo --full --pretty %s\n", tokenString)
	fmt.Fprintf(stdout, "  curl -H 'Authorization: Bearer %s' http://localhost:8080/decode\n\n", tokenString)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
