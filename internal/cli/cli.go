// Package cli is the terminal front-end: it renders scenes, collects line
// input, and loops on the engine until a terminal. No branching logic lives
// here.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"kingdomsperil/internal/chronicle"
	"kingdomsperil/internal/game"
)

type CLI struct {
	Engine        *game.Engine
	ChroniclePath string

	in  *bufio.Scanner
	out io.Writer
}

func New(engine *game.Engine, in io.Reader, out io.Writer, chroniclePath string) *CLI {
	return &CLI{
		Engine:        engine,
		ChroniclePath: chroniclePath,
		in:            bufio.NewScanner(in),
		out:           out,
	}
}

// Run prompts for a knightly name, then serves the main menu until the
// player quits or input ends.
func (c *CLI) Run() error {
	c.printf("Enter your knightly name: ")
	name, ok := c.readLine()
	if !ok {
		return nil
	}
	sessName := strings.TrimSpace(name)
	display := sessName
	if display == "" {
		display = game.DefaultPlayerName
	}
	c.printf("\nWelcome, %s!\n", display)
	c.printf("May your quest be as daring as a Monty Python adventure and as legendary as The Princess Bride.\n")

	for {
		c.printf("\n=== Kingdom's Peril ===\n")
		c.printf("1. Start New Adventure\n")
		c.printf("2. View Past Outcomes\n")
		c.printf("3. Export Chronicle (PDF)\n")
		c.printf("4. Quit\n")
		c.printf("Choose (1/2/3/4): ")

		choice, ok := c.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			if err := c.playthrough(sessName); err != nil {
				return err
			}
		case "2":
			report, err := c.Engine.ReadOutcomes()
			if err != nil {
				c.printf("Could not read outcomes: %v\n", err)
				continue
			}
			c.printf("\n%s\n", report)
		case "3":
			c.exportChronicle()
		case "4":
			c.printf("Farewell, brave knight!\n")
			return nil
		default:
			c.printf("Invalid choice. Please try again.\n")
		}
	}
}

// playthrough runs one session from the start scene to a terminal.
func (c *CLI) playthrough(name string) error {
	sess := c.Engine.NewSession(name)

	for {
		text, err := c.Engine.RenderText(sess)
		if err != nil {
			return err
		}
		sc, err := c.Engine.CurrentScene(sess)
		if err != nil {
			return err
		}
		c.printf("\n%s\n", text)

		var res game.StepResult
		switch sc.Kind {
		case game.KindChoice:
			for _, opt := range sc.Options {
				c.printf("  %s) %s\n", opt.Key, opt.Label)
			}
			c.printf("Choose (%s): ", strings.Join(sc.Keys(), "/"))
			line, ok := c.readLine()
			if !ok {
				return nil
			}
			if isInventoryCommand(line) {
				c.printf("You carry: %s\n", sess.DescribeInventory())
				continue
			}
			res, err = c.Engine.ApplyChoice(sess, line)
			if err != nil {
				var invalid *game.InvalidChoiceError
				if errors.As(err, &invalid) {
					c.printf("Invalid choice. Please enter one of [%s].\n", strings.Join(invalid.Valid, ", "))
					continue
				}
				return err
			}
		case game.KindInput:
			c.printf("> ")
			line, ok := c.readLine()
			if !ok {
				return nil
			}
			res, err = c.Engine.ApplyInput(sess, line)
			if err != nil {
				return err
			}
		default:
			// Terminal-kind scenes end the session on entry, so the loop
			// never reaches here with a validated graph.
			return fmt.Errorf("cannot advance scene %q of kind %q", sc.ID, sc.Kind)
		}

		if res.LogErr != nil {
			c.printf("(Warning: outcome could not be saved: %v)\n", res.LogErr)
		}
		if res.Message != "" {
			c.printf("\n%s\n", res.Message)
		}
		if res.Terminal {
			if res.Fatal {
				c.printf("\nAlas, your quest has ended in tragedy!\n")
			} else {
				c.printf("\nYour quest ends in glory. Well done, %s!\n", sess.PlayerName)
			}
			c.printf("You finished carrying: %s\n", sess.DescribeInventory())
			return nil
		}
	}
}

func (c *CLI) exportChronicle() {
	lines, err := c.Engine.Log.ReadAll()
	if err != nil {
		c.printf("Could not read outcomes: %v\n", err)
		return
	}
	pdf, err := chronicle.Generate(c.Engine.Story.Title, lines)
	if err != nil {
		c.printf("Could not render chronicle: %v\n", err)
		return
	}
	if err := os.WriteFile(c.ChroniclePath, pdf, 0o644); err != nil {
		c.printf("Could not write chronicle: %v\n", err)
		return
	}
	c.printf("Chronicle written to %s\n", c.ChroniclePath)
}

func isInventoryCommand(line string) bool {
	switch game.Normalize(line) {
	case "inventory", "i":
		return true
	}
	return false
}

func (c *CLI) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
