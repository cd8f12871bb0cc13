// Command storefront is a terminal shop front for the menu service. The cart
// is kept locally between runs, like browser storage.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"pavanxo/config"
	"pavanxo/storefront/internal/cart"
	"pavanxo/storefront/internal/menuclient"
	"pavanxo/storefront/internal/shop"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

const usage = `usage: storefront [flags] <command> [args]

commands:
  menu [--category c]                        list the menu
  add <menuItemId> [--qty n]                 add a menu item to the cart
  remove <cartId>                            remove a cart entry
  inc <cartId> | dec <cartId>                change an entry's quantity
  cart                                       show the cart
  count                                      print the number of items in the cart
  checkout                                   place an order for the cart
  contact --name n --email e --message m     send a message to the restaurant
  popular [--limit n]                        most ordered dishes

flags:
`

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	_ = godotenv.Load()

	global := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(stderr)
	apiURL := global.String("api", config.GetEnv("API_URL", "http://localhost:3000"), "menu service base URL")
	storeKind := global.String("store", "file", "cart storage: file, redis or memory")
	dir := global.String("dir", defaultDir(), "directory for the file store")
	session := global.String("session", "default", "cart session name")
	redisAddr := global.String("redis", config.GetEnv("REDIS_ADDR", "localhost:6379"), "redis address for the redis store")
	verbose := global.BoolP("verbose", "v", false, "log debug output to stderr")
	global.Usage = func() {
		fmt.Fprint(stderr, usage)
		global.PrintDefaults()
	}

	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return errUsage
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	logger, err := config.NewLogger(level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore, err := openStore(ctx, *storeKind, *dir, *session, *redisAddr)
	if err != nil {
		return err
	}
	defer closeStore()

	engine := cart.NewEngine(store, cart.WithLogger(logger))
	client := menuclient.New(*apiURL, nil, logger)
	app := shop.New(engine, client, stdout, logger)
	app.Load(ctx)

	return dispatch(ctx, app, global.Arg(0), global.Args()[1:], stderr)
}

func dispatch(ctx context.Context, app *shop.App, command string, args []string, stderr io.Writer) error {
	fs := pflag.NewFlagSet(command, pflag.ContinueOnError)
	fs.SetOutput(stderr)

	switch command {
	case "menu":
		category := fs.String("category", "all", "only show this category")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return app.ShowMenu(ctx, *category)

	case "add":
		qty := fs.Int("qty", 1, "quantity, 1 to 10")
		if err := fs.Parse(args); err != nil {
			return err
		}
		id, err := intArg(fs, "menuItemId")
		if err != nil {
			return err
		}
		_, err = app.AddFromMenu(ctx, int(id), *qty)
		return err

	case "remove", "inc", "dec":
		if err := fs.Parse(args); err != nil {
			return err
		}
		id, err := intArg(fs, "cartId")
		if err != nil {
			return err
		}
		switch command {
		case "remove":
			return app.Remove(ctx, id)
		case "inc":
			return app.Increment(ctx, id)
		default:
			return app.Decrement(ctx, id)
		}

	case "cart":
		return app.ShowCart()

	case "count":
		app.ShowCount()
		return nil

	case "checkout":
		_, err := app.Checkout(ctx)
		return err

	case "contact":
		name := fs.String("name", "", "your name")
		email := fs.String("email", "", "your email address")
		message := fs.String("message", "", "your message")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return app.Contact(ctx, menuclient.Contact{Name: *name, Email: *email, Message: *message})

	case "popular":
		limit := fs.Int("limit", 5, "how many dishes to show")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return app.ShowPopular(ctx, *limit)
	}

	fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
	return errUsage
}

func intArg(fs *pflag.FlagSet, name string) (int64, error) {
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("%s expects exactly one <%s>", fs.Name(), name)
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, fs.Arg(0))
	}
	return id, nil
}

func openStore(ctx context.Context, kind, dir, session, redisAddr string) (cart.Store, func(), error) {
	noop := func() {}
	switch kind {
	case "file":
		return cart.NewFileStore(filepath.Join(dir, cart.SafeName(session))), noop, nil
	case "memory":
		return cart.NewMemoryStore(), noop, nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("connect to redis at %s: %w", redisAddr, err)
		}
		return cart.NewRedisStore(client, session, 0), func() { client.Close() }, nil
	}
	return nil, noop, fmt.Errorf("unknown store %q (want file, redis or memory)", kind)
}

func defaultDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "pavanxo")
	}
	return ".pavanxo"
}
