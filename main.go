//    FeatureLab
//    Copyright: E Gunderson 2022-24
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/e-gun/FeatureLab/internal/lnch"
	"github.com/e-gun/FeatureLab/internal/mm"
	"github.com/e-gun/FeatureLab/internal/run"
	"github.com/e-gun/FeatureLab/internal/str"
	"github.com/e-gun/FeatureLab/internal/vv"
	"github.com/google/uuid"
	"github.com/pkg/profile"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"
)

func main() {
	if code := launch(); code != 0 {
		lnch.Msg.ExitOrHang(code)
	}
}

// launch - everything main does; returning instead of exiting lets the deferred profiler and signal handler finish
func launch() int {
	// go tool pprof --pdf ./FeatureLab /var/folders/.../cpu.pprof > profile.pdf
	const (
		MSG1 = "%s run %s [loglevel=%d; workers=%d; %s]"
		MSG4 = "run %s complete"
	)

	start := time.Now()
	lnch.ConfigAtLaunch()

	cfg := lnch.Config
	msg := lnch.Msg
	msg.RunID = strings.Replace(uuid.New().String(), "-", "", -1)

	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	if !cfg.QuietStart {
		lnch.PrintVersion(*cfg)
		fmt.Println(msg.Styled(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJURL)))
	}

	msg.MAND(fmt.Sprintf(MSG1, vv.MYNAME, msg.RunID, cfg.LogLevel, cfg.WorkerCount, cfg.Sample.Seed.String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	syncloglevels()

	if err := execute(ctx, cfg, msg, os.Stdout); err != nil {
		return 1
	}

	msg.Timer("Z", fmt.Sprintf(MSG4, msg.RunID), start, start)
	return 0
}

// execute - run the pipeline and write its report to w; failures are reported via msg and returned
func execute(ctx context.Context, cfg *str.CurrentConfiguration, msg *mm.MessageMaker, w io.Writer) error {
	const (
		MSG2 = "pipeline"
		MSG3 = "report"
	)

	res, err := run.Pipeline(ctx, cfg, msg.RunID)
	if err != nil {
		msg.ER(err, MSG2)
		return err
	}

	if err = run.Report(w, res); err != nil {
		msg.ER(err, MSG3)
		return err
	}
	return nil
}
