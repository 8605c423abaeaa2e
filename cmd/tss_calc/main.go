package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pbielenia/tss-calculator/pipeline"
)

func main() {
	// A .env file may supply defaults; absence is not an error.
	_ = godotenv.Load()

	var (
		ftp    = flag.Int("ftp", 0, "Functional Threshold Power in watts (100..400), defaults to TSS_FTP")
		outDir = flag.String("out", "", "Optional directory for power series and summary artifacts")
		format = flag.String("format", "csv", "Series artifact format: csv|parquet")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s --ftp 223 [--out outdir] [--format csv|parquet] file.fit [file.fit...]\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	ftpWatts := *ftp
	if ftpWatts == 0 {
		if env := os.Getenv("TSS_FTP"); env != "" {
			parsed, err := strconv.Atoi(env)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid TSS_FTP %q: %v\n", env, err)
				os.Exit(2)
			}
			ftpWatts = parsed
		}
	}

	files := flag.Args()
	if ftpWatts == 0 || len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if _, err := pipeline.Run(pipeline.Options{
		FTPWatts: ftpWatts,
		Files:    files,
		OutDir:   *outDir,
		Format:   *format,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "tss_calc failed: %v\n", err)
		os.Exit(1)
	}
}
