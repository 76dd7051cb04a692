package shell

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go4sqlite/go4sqlite"
	"github.com/go4sqlite/go4sqlite/internal/log"
	"github.com/go4sqlite/go4sqlite/internal/shell/config"
	"github.com/go4sqlite/go4sqlite/internal/shell/repl"
	"github.com/go4sqlite/go4sqlite/internal/version"
)

// Run runs the interactive shell.
func Run(ctx context.Context) error {
	conf := config.MustParse(os.Args)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(version.ShellVersion())

	logger := log.NewNopLogger()
	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer file.Close()
		logger = log.NewLogger(file)
	}

	var conn *go4sqlite.Connection
	var err error
	if conf.VFS != "" {
		conn, err = go4sqlite.OpenVFS(conf.DatabasePath, conf.OpenFlags(), conf.VFS)
	} else {
		conn, err = go4sqlite.Open(conf.DatabasePath, conf.OpenFlags())
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.InfoNs("shell", "database opened", log.KV{
		"path":     conf.DatabasePath,
		"readonly": conf.ReadOnly,
	})

	rp := repl.NewRepl(ctx, stop, conf, conn, logger)
	defer rp.Shutdown()
	go func() {
		if err := rp.Start(); err != nil {
			fmt.Println(err)
			stop()
		}
	}()

	<-ctx.Done()
	fmt.Printf("\nGoodbye!\n\n")
	return nil
}
