package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/itchan-dev/agora/shared/config"
	"github.com/itchan-dev/agora/shared/domain"
	"github.com/itchan-dev/agora/shared/jwt"
)

// Sessions are owned by an upstream service. This tool mints a token with the
// same key so the API can be exercised locally.
func main() {
	var (
		configFolder string
		uid          int64
		username     string
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Int64Var(&uid, "uid", 0, "user id")
	flag.StringVar(&username, "username", "", "user name")
	flag.Parse()

	if uid <= 0 || username == "" {
		log.Fatal("both -uid and -username are required")
	}

	cfg := config.MustLoad(configFolder)
	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(domain.User{Id: uid, Username: username})
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
	fmt.Println()
	fmt.Println("Use it as a cookie or header:")
	fmt.Printf("  Cookie: accessToken=%s\n", token)
	fmt.Printf("  Authorization: Bearer %s\n", token)
}
