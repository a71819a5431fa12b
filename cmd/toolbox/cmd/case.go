package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/msto63/toolbox/foundation/utils/stringx"
	"github.com/msto63/toolbox/internal/caseconv/client"
	"github.com/msto63/toolbox/internal/caseconv/service"
	"github.com/spf13/cobra"
)

// converter is satisfied by the local service adapter and the gRPC client
type converter interface {
	Convert(ctx context.Context, caseName, input string) (string, error)
	ConvertAll(ctx context.Context, input string) (map[string]string, error)
}

// localConverter adapts the in-process service to converter
type localConverter struct {
	svc *service.Service
}

func (l localConverter) Convert(ctx context.Context, caseName, input string) (string, error) {
	result, err := l.svc.Convert(ctx, service.ConvertRequest{Case: caseName, Input: input})
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

func (l localConverter) ConvertAll(ctx context.Context, input string) (map[string]string, error) {
	return l.svc.ConvertAll(ctx, input)
}

type caseOptions struct {
	all     bool
	remote  string
	timeout time.Duration
}

func newCaseCmd(root *rootOptions) *cobra.Command {
	opts := &caseOptions{}

	cmd := &cobra.Command{
		Use:   "case <kind> [words...]",
		Short: "Convert words to a case",
		Long: `Convert words to a case.

The words are joined with spaces and converted as one input. Without words
every line of stdin is converted on its own.

Kinds accept common spellings: kebab, kebab-case, snake_case,
SCREAMING_SNAKE_CASE, constant, camelCase, PascalCase, ...

With --all the kind is omitted and every case is printed.

Examples:
  toolbox case kebab theQUICKBrownFox      # the-quick-brown-fox
  toolbox case camel the quick brown fox   # theQuickBrownFox
  toolbox case --all helloWorld
  ls | toolbox case snake
  toolbox case pascal foo bar --remote localhost:9310`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "print every case")
	cmd.Flags().StringVar(&opts.remote, "remote", "", "convert on a remote server (host:port)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "remote call timeout")

	return cmd
}

func runCase(cmd *cobra.Command, root *rootOptions, opts *caseOptions, args []string) error {
	caseName := ""
	words := args
	if !opts.all {
		if len(args) == 0 {
			return fmt.Errorf("missing case kind, see 'toolbox case --help'")
		}
		// validate locally so a typo fails before any stdin is read
		kind, err := stringx.ParseCase(args[0])
		if err != nil {
			return err
		}
		caseName, words = kind.String(), args[1:]
	}

	conv, closeFn, err := newConverter(root, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if len(words) > 0 {
		return convertOne(ctx, out, conv, opts.all, caseName, strings.Join(words, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), scanLimit(root))

	first := true
	for scanner.Scan() {
		if opts.all && !first {
			fmt.Fprintln(out)
		}
		first = false

		if err := convertOne(ctx, out, conv, opts.all, caseName, scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func newConverter(root *rootOptions, opts *caseOptions) (converter, func(), error) {
	if opts.remote != "" {
		c, err := client.DialWithConfig(clientConfig(opts.remote, opts.timeout))
		if err != nil {
			return nil, nil, err
		}
		return c, func() { c.Close() }, nil
	}

	svc, err := service.NewService(serviceConfig(root))
	if err != nil {
		return nil, nil, err
	}
	return localConverter{svc: svc}, func() {}, nil
}

func convertOne(ctx context.Context, out io.Writer, conv converter, all bool, caseName, input string) error {
	if !all {
		output, err := conv.Convert(ctx, caseName, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, output)
		return nil
	}

	outputs, err := conv.ConvertAll(ctx, input)
	if err != nil {
		return err
	}
	for _, kind := range stringx.AllCases() {
		fmt.Fprintf(out, "%-13s %s\n", kind.String(), outputs[kind.String()])
	}
	return nil
}

// scanLimit is the longest stdin line accepted, one byte over the input
// limit so oversized lines reach the service and fail with its error
func scanLimit(root *rootOptions) int {
	if limit := root.config.Conversion.MaxInputBytes; limit > 0 {
		return limit + 1
	}
	return 1 << 20
}
