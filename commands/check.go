package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/technical-param/password-checker-web/hibp"
	"github.com/technical-param/password-checker-web/net"
	"github.com/technical-param/password-checker-web/strength"
	"github.com/technical-param/password-checker-web/strength/detectors"
)

type CheckCommand struct {
	Password string `short:"p" long:"password" description:"the password to evaluate; read from STDIN when omitted" value-name:"PASSWORD"`
	Wordlist string `long:"wordlist" description:"file of extra weak words, one per line" value-name:"PATH"`
	MinScore int    `long:"min-score" description:"exit with status 3 when the score falls below this" value-name:"N"`
	Offline  bool   `long:"offline" description:"skip the breach oracle lookup"`
	JSON     bool   `long:"json" description:"print the full result as JSON"`
	Debug    bool   `long:"debug" description:"enables debug logging"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("check")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	}

	password := command.Password
	if password == "" {
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			password = scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	evaluator, err := buildEvaluator(command.Wordlist, command.Offline, "", hibp.DefaultTimeout)
	if err != nil {
		return err
	}

	result := evaluator.Evaluate(logger, password)

	if command.JSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	} else {
		printResult(result)
	}

	if result.Score < command.MinScore {
		os.Exit(3)
	}

	return nil
}

func buildEvaluator(wordlistPath string, offline bool, baseURL string, timeout time.Duration) (*strength.Evaluator, error) {
	var breach strength.BreachLookup
	if !offline {
		breach = hibp.NewClient(net.NewTimeoutClient(timeout), baseURL)
	}

	ds := detectors.DefaultSet()
	if wordlistPath != "" {
		file, err := os.Open(wordlistPath)
		if err != nil {
			return nil, err
		}

		words, err := detectors.WordsFromReader(file)
		file.Close()
		if err != nil {
			return nil, err
		}

		ds = detectors.SetWithWords(words)
	}

	return strength.NewWithDetectors(breach, ds), nil
}

func printResult(result strength.Result) {
	colorize := red
	switch {
	case result.Score >= 7:
		colorize = green
	case result.Score >= 4:
		colorize = yellow
	}

	fmt.Printf("%s %d/10\n", colorize(result.Label), result.Score)
	fmt.Printf("Entropy: %.1f bits\n", result.Entropy)

	if result.BreachKnown() {
		fmt.Printf("Known breaches: %d\n", result.BreachCount())
	} else {
		fmt.Println("Known breaches: unknown")
	}

	if len(result.Reasons) > 0 {
		fmt.Println()
		fmt.Println("Weaknesses:")
		for _, reason := range result.Reasons {
			fmt.Printf("  - %s\n", reason)
		}
	}

	fmt.Println()
	fmt.Println("Tips:")
	for _, tip := range result.Tips {
		fmt.Printf("  - %s\n", tip)
	}
}
