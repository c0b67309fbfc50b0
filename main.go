package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/FitrahHaque/huffman-engine/engine"
)

var Commands = [...]string{"compress", "decompress", "benchmark", "help"}

func main() {
	application := os.Args[0]
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	compressCmd := flag.Bool(Commands[0], false, "Compress File")
	decompressCmd := flag.Bool(Commands[1], false, "Decompress File")
	benchmarkCmd := flag.Bool(Commands[2], false, "Benchmark File")
	helpCmd := flag.Bool(Commands[3], false, "Help")

	if len(os.Args) == 1 {
		fmt.Println("Please provide commands")
		os.Exit(1)
	}
	commandArgs := findIntersection(
		[]string{
			"--compress",
			"--decompress",
			"--benchmark",
			"--help",
		},
		os.Args[1:],
	)
	flag.CommandLine.Parse(commandArgs)
	commandsSelected := countTrue([]bool{*compressCmd, *decompressCmd, *benchmarkCmd})
	if commandsSelected > 1 {
		fmt.Println("Specify a single command")
		os.Exit(1)
	} else if commandsSelected == 0 {
		if *helpCmd {
			fmt.Fprintf(os.Stderr, "Usage of %s:\n", application)
			fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
			fmt.Fprintf(os.Stderr, "Flag:\n")
			flag.PrintDefaults()
			return
		}
		fmt.Println("No command is selected. Compression by default")
	}

	command := Commands[0]
	if *decompressCmd {
		command = Commands[1]
	} else if *benchmarkCmd {
		command = Commands[2]
	}

	commandFS := flag.NewFlagSet(command, flag.ExitOnError)
	commandFS.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s --%s [OPTIONS] <file(s)>\n", application, command)
		fmt.Fprintf(os.Stderr, "Files may be separated by spaces or commas.\n")
		fmt.Fprintf(os.Stderr, "Flag:\n")
		commandFS.PrintDefaults()
	}
	algorithm := commandFS.String("algorithm", engine.DefaultAlgorithm, fmt.Sprintf("Which algorithm to use, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	outputFileExtension := commandFS.String("outfileext", engine.DefaultOutputExtension, "File extension used for compressed files")
	deleteAfter := commandFS.Bool("delete", false, "Delete input files after a successful run")
	verbose := commandFS.Bool("verbose", false, "Log code tables and per-file details")
	progress := commandFS.Bool("progress", false, "Show a progress bar")
	commandFS.Parse(withoutCommands(os.Args[1:]))

	files := splitFiles(commandFS.Args())
	if len(files) == 0 {
		fmt.Printf("No file provided for %s\n", command)
		commandFS.Usage()
		os.Exit(1)
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			fmt.Printf("Could not open the provided file %s\n", f)
			os.Exit(1)
		}
	}

	cfg := engine.NewConfig(
		engine.WithAlgorithm(*algorithm),
		engine.WithOutputExtension(*outputFileExtension),
		engine.WithVerbose(*verbose),
		engine.WithProgress(*progress, os.Stderr),
	)

	var err error
	switch command {
	case Commands[0]:
		err = engine.CompressFiles(files, cfg)
	case Commands[1]:
		err = engine.DecompressFiles(files, cfg)
	case Commands[2]:
		var results []engine.Result
		results, err = engine.Benchmark(files, cfg)
		if reportErr := engine.Report(os.Stdout, results); err == nil {
			err = reportErr
		}
	}
	if err != nil {
		cfg.Logger.Errorf("%v", err)
		os.Exit(1)
	}

	if *deleteAfter && command != Commands[2] {
		if err := deleteFiles(files); err != nil {
			cfg.Logger.Errorf("%v", err)
			os.Exit(1)
		}
	}
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func findIntersection(commandList, argList []string) []string {
	set := make(map[string]struct{}, len(commandList))
	for _, c := range commandList {
		set[c] = struct{}{}
	}
	var out []string
	for _, arg := range argList {
		if _, ok := set[arg]; ok {
			out = append(out, arg)
		}
	}
	return out
}

// withoutCommands drops the top-level command flags so that the rest can be
// parsed by the command's own flag set.
func withoutCommands(argList []string) []string {
	var out []string
	for _, arg := range argList {
		if isCommand(arg) {
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isCommand(arg string) bool {
	for _, c := range Commands {
		if arg == "--"+c || arg == "-"+c {
			return true
		}
	}
	return false
}

func splitFiles(args []string) []string {
	var files []string
	for _, arg := range args {
		parts := strings.Split(arg, ",")
		trimSpace(parts)
		for _, p := range parts {
			if p != "" {
				files = append(files, p)
			}
		}
	}
	return files
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}

func deleteFiles(files []string) error {
	for _, file := range files {
		if err := os.Remove(file); err != nil {
			return err
		}
	}
	return nil
}
