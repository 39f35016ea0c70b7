// Package cli implements the nella command-line interface on top of the
// client library.
package cli

import (
	"fmt"

	"github.com/zini/nella/internal/iocli"
	"github.com/zini/nella/pkg/nella"
	"github.com/zini/nella/pkg/tokencache"
)

type Cli struct {
	client *nella.Client
	cache  tokencache.Store
	io     iocli.IO
	raw    bool // print raw JSON payloads instead of formatted output
}

func New(client *nella.Client, cache tokencache.Store, io iocli.IO, raw bool) *Cli {
	return &Cli{
		client: client,
		cache:  cache,
		io:     io,
		raw:    raw,
	}
}

func PrintUsage() {
	fmt.Println("Nella travel card client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  nella [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version          Show version information")
	fmt.Println("  --base-url URL     Service URL (default: " + nella.DefaultBaseURL + ")")
	fmt.Println("  --lang CODE        ISO 639-1 language code (default: en)")
	fmt.Println("  --cache TYPE       Token cache backend: file or bolt (default: file)")
	fmt.Println("  --cache-db PATH    BoltDB cache path (default: nella-cache.db)")
	fmt.Println("  --raw              Print raw JSON payloads")
	fmt.Println("  --debug            Enable debug logging")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  NELLA_USERNAME          Username (skips the prompt)")
	fmt.Println("  NELLA_PASSWORD          Password (skips the prompt)")
	fmt.Println("  NELLA_CACHE_PASSPHRASE  Encrypt the bolt cache with this passphrase")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login              Authenticate and cache the session token")
	fmt.Println("  logout             Drop the session and remove the cached token")
	fmt.Println("  status             Show cached token state")
	fmt.Println("  user               Show profile of the logged in user")
	fmt.Println("  cards              List travel cards with tickets")
	fmt.Println("  card NUMBER        Show one travel card")
	fmt.Println("  products CARD_ID   List products that can be bought for a card")
}
