package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gostonefire/hashytables"
	"github.com/gostonefire/hashytables/crt"
)

func newHashyStatCmd() *cobra.Command {
	var technique string
	var sizes []int64
	var distribution bool
	var dump bool
	var cmd = &cobra.Command{
		Use:   "hashystat [file]",
		Short: "Load keys into a hash table and report how they spread",
		Long: "hashystat reads one key per line from file, or from stdin if no file is given,\n" +
			"stores each key with its line number in a step probing or separate chaining\n" +
			"hash table and prints statistics on size, load factor and chain lengths.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var crtType int
			switch technique {
			case "step":
				crtType = crt.StepProbing
			case "chaining":
				crtType = crt.SeparateChaining
			default:
				return fmt.Errorf("unknown collision resolution technique %q, use step or chaining", technique)
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("error while opening key file: %w", err)
				}
				defer func(f *os.File) { _ = f.Close() }(f)
				in = f
			}

			hashTable, _, err := hashytables.NewHashTable[string, int](hashytables.Conf{
				CollisionResolutionTechnique: crtType,
				TableSizes:                   sizes,
			})
			if err != nil {
				return err
			}

			if err = loadKeys(in, hashTable); err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), hashTable, distribution, dump)
		},
	}

	cmd.PersistentFlags().StringVarP(
		&technique, "crt", "c", "step",
		"Collision resolution technique, step or chaining")
	cmd.PersistentFlags().Int64SliceVarP(
		&sizes, "sizes", "s", nil,
		"Ascending capacity schedule, chaining uses the first entry only")
	cmd.PersistentFlags().BoolVarP(
		&distribution, "distribution", "d", false,
		"Print the number of records in every slot or bucket")
	cmd.PersistentFlags().BoolVar(
		&dump, "dump", false,
		"Print every (key,value) record")

	return cmd
}

// loadKeys - Sets every non-empty line of r as a key with its line number as value
func loadKeys(r io.Reader, hashTable *hashytables.HashTable[string, int]) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		key := scanner.Text()
		if key == "" {
			continue
		}
		if err := hashTable.Set(key, line); err != nil {
			return fmt.Errorf("error while setting key from line %d: %w", line, err)
		}
	}

	return scanner.Err()
}

// report - Writes table statistics to w
func report(w io.Writer, hashTable *hashytables.HashTable[string, int], distribution, dump bool) error {
	stat, err := hashTable.Stat(distribution)
	if err != nil {
		return err
	}
	info := hashTable.Info()

	fmt.Fprintf(w, "technique:     %s\n", crt.Name(info.CollisionResolutionTechnique))
	fmt.Fprintf(w, "records:       %d\n", stat.Records)
	fmt.Fprintf(w, "table size:    %d\n", stat.TableSize)
	fmt.Fprintf(w, "tombstones:    %d\n", stat.Tombstones)
	fmt.Fprintf(w, "load factor:   %.3f\n", stat.LoadFactor)
	fmt.Fprintf(w, "longest chain: %d\n", stat.LongestChain)

	if distribution {
		fmt.Fprintln(w, "distribution:")
		for i, n := range stat.BucketDistribution {
			if n > 0 {
				fmt.Fprintf(w, "  %6d: %d\n", i, n)
			}
		}
	}

	if dump {
		fmt.Fprint(w, hashTable.String())
	}

	return nil
}
