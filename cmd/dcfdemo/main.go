// Command dcfdemo is a small host around the dcf package: a runnable
// version of the package's gen/eval/reconstruct flow for manual testing
// and demos.
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"github.com/zeebo/blake3"

	"dcf/dcf"
	"dcf/prg"
)

const domainBytes = 16

var (
	alphaDec     string
	betaDec      string
	seedSecret   string
	masterSecret string
	shareOutA    string
	shareOutB    string
	shareIn      string
	pointsDec    []string
	party        int
	shareAIn     string
	shareBIn     string
	bound        string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dcfdemo:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dcfdemo",
		Short: "Generate and evaluate distributed comparison function shares",
	}
	root.AddCommand(genCmd(), evalCmd(), reconstructCmd())
	return root
}

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Deal a CmpFn into two party shares",
		RunE:  runGen,
	}
	cmd.Flags().StringVar(&alphaDec, "alpha", "", "comparison threshold, decimal")
	cmd.Flags().StringVar(&betaDec, "beta", "", "output value, decimal")
	cmd.Flags().StringVar(&bound, "bound", "lt", "bound selector: lt or gt")
	cmd.Flags().StringVar(&seedSecret, "seed-secret", "", "passphrase to derive the two initial seeds from, for reproducible demos (never use in production: real seeds must come from a uniform random source)")
	cmd.Flags().StringVar(&masterSecret, "master-secret", "demo-master-secret", "passphrase the five PRG keys are derived from")
	cmd.Flags().StringVar(&shareOutA, "out-a", "share-a.cbor", "output path for party 0's share")
	cmd.Flags().StringVar(&shareOutB, "out-b", "share-b.cbor", "output path for party 1's share")
	cmd.MarkFlagRequired("alpha")
	cmd.MarkFlagRequired("beta")
	return cmd
}

func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate a narrowed share at a batch of points",
		RunE:  runEval,
	}
	cmd.Flags().StringVar(&shareIn, "share", "", "path to a narrowed share (output of gen)")
	cmd.Flags().IntVar(&party, "party", 0, "party index, 0 or 1")
	cmd.Flags().StringSliceVar(&pointsDec, "points", nil, "decimal evaluation points")
	cmd.Flags().StringVar(&masterSecret, "master-secret", "demo-master-secret", "passphrase the five PRG keys are derived from")
	cmd.MarkFlagRequired("share")
	cmd.MarkFlagRequired("points")
	return cmd
}

func reconstructCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconstruct",
		Short: "XOR two parties' shares at the same point into f(x)",
		RunE:  runReconstruct,
	}
	cmd.Flags().StringVar(&shareAIn, "share-a", "", "path to party 0's share")
	cmd.Flags().StringVar(&shareBIn, "share-b", "", "path to party 1's share")
	cmd.Flags().StringSliceVar(&pointsDec, "points", nil, "decimal evaluation points")
	cmd.Flags().StringVar(&masterSecret, "master-secret", "demo-master-secret", "passphrase the five PRG keys are derived from")
	cmd.MarkFlagRequired("share-a")
	cmd.MarkFlagRequired("share-b")
	cmd.MarkFlagRequired("points")
	return cmd
}

func buildDCF() (*dcf.DCF, error) {
	keys, err := prg.DeriveKeys([]byte(masterSecret), []byte("dcfdemo"))
	if err != nil {
		return nil, fmt.Errorf("deriving PRG keys: %w", err)
	}
	g, err := prg.NewAES256MMO(keys)
	if err != nil {
		return nil, fmt.Errorf("building PRG: %w", err)
	}
	return dcf.NewDCF(domainBytes, g)
}

// bigToFixed renders a non-negative decimal integer as a big-endian,
// zero-padded N-byte array, the shape CmpFn.Alpha and every evaluation
// point require. It is purely a CLI ergonomics layer: the core package
// never sees a *big.Int.
func bigToFixed(dec string, n int) ([]byte, error) {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%q is not a non-negative decimal integer", dec)
	}
	raw := v.Bytes()
	if len(raw) > n {
		return nil, fmt.Errorf("%s does not fit in %d bytes", dec, n)
	}
	out := make([]byte, n)
	copy(out[n-len(raw):], raw)
	return out, nil
}

func seedsFromSecret(secret string) ([2][16]byte, error) {
	var seeds [2][16]byte
	hasher0 := blake3.New()
	hasher0.Write([]byte("dcf-seed-0:" + secret))
	copy(seeds[0][:], hasher0.Sum(nil))
	hasher1 := blake3.New()
	hasher1.Write([]byte("dcf-seed-1:" + secret))
	copy(seeds[1][:], hasher1.Sum(nil))
	return seeds, nil
}

func parseBound(s string) (dcf.Bound, error) {
	switch s {
	case "lt":
		return dcf.BoundLT, nil
	case "gt":
		return dcf.BoundGT, nil
	default:
		return 0, fmt.Errorf("unknown bound %q, want lt or gt", s)
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	d, err := buildDCF()
	if err != nil {
		return err
	}
	alpha, err := bigToFixed(alphaDec, domainBytes)
	if err != nil {
		return fmt.Errorf("alpha: %w", err)
	}
	betaBytes, err := bigToFixed(betaDec, dcf.SeedLen)
	if err != nil {
		return fmt.Errorf("beta: %w", err)
	}
	b, err := parseBound(bound)
	if err != nil {
		return err
	}

	var seeds [2][16]byte
	if seedSecret != "" {
		seeds, err = seedsFromSecret(seedSecret)
		if err != nil {
			return err
		}
	} else {
		if _, err := rand.Read(seeds[0][:]); err != nil {
			return err
		}
		if _, err := rand.Read(seeds[1][:]); err != nil {
			return err
		}
	}

	var beta [dcf.SeedLen]byte
	copy(beta[:], betaBytes)
	k, err := d.Gen(dcf.CmpFn{Alpha: alpha, Beta: beta}, seeds, b)
	if err != nil {
		return fmt.Errorf("gen: %w", err)
	}

	if err := writeShare(shareOutA, k.Narrow(dcf.Party0)); err != nil {
		return err
	}
	if err := writeShare(shareOutB, k.Narrow(dcf.Party1)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", shareOutA, shareOutB)
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	d, err := buildDCF()
	if err != nil {
		return err
	}
	share, err := readShare(shareIn)
	if err != nil {
		return err
	}
	if party != 0 && party != 1 {
		return fmt.Errorf("party must be 0 or 1")
	}

	for _, dec := range pointsDec {
		x, err := bigToFixed(dec, domainBytes)
		if err != nil {
			return fmt.Errorf("point %q: %w", dec, err)
		}
		y, err := d.Eval(dcf.Party(party), share, x)
		if err != nil {
			return fmt.Errorf("eval %q: %w", dec, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %x\n", dec, y)
	}
	return nil
}

func runReconstruct(cmd *cobra.Command, args []string) error {
	d, err := buildDCF()
	if err != nil {
		return err
	}
	shareA, err := readShare(shareAIn)
	if err != nil {
		return err
	}
	shareB, err := readShare(shareBIn)
	if err != nil {
		return err
	}

	for _, dec := range pointsDec {
		x, err := bigToFixed(dec, domainBytes)
		if err != nil {
			return fmt.Errorf("point %q: %w", dec, err)
		}
		y0, err := d.Eval(dcf.Party0, shareA, x)
		if err != nil {
			return fmt.Errorf("eval party 0 at %q: %w", dec, err)
		}
		y1, err := d.Eval(dcf.Party1, shareB, x)
		if err != nil {
			return fmt.Errorf("eval party 1 at %q: %w", dec, err)
		}
		var out [dcf.SeedLen]byte
		for i := range out {
			out[i] = y0[i] ^ y1[i]
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %x\n", dec, out)
	}
	return nil
}

func writeShare(path string, s dcf.Share) error {
	data, err := dcf.MarshalShare(s)
	if err != nil {
		return fmt.Errorf("marshaling share: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func readShare(path string) (dcf.Share, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dcf.Share{}, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := dcf.UnmarshalShare(data)
	if err != nil {
		return dcf.Share{}, fmt.Errorf("unmarshaling %s: %w", path, err)
	}
	return s, nil
}
