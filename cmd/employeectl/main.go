package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/ogurasousui/employee-records/internal/client"
	"github.com/ogurasousui/employee-records/internal/form"
)

const defaultAddr = "http://localhost:5000"

const usage = `usage: employeectl [-addr URL] <command> [flags]

commands:
  add     -first -last -id -email -phone -department -joined -role
  list
  update  <employeeId> [-first -last -email -phone -department -joined -role]
  delete  <employeeId>
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("employeectl: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("employeectl", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	addr := global.String("addr", envOr("EMPLOYEE_API_ADDR", defaultAddr), "base URL of the employee API")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w\n%s", err, usage)
	}

	if global.NArg() == 0 {
		return errors.New(usage)
	}

	c, err := client.New(*addr, nil)
	if err != nil {
		return err
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "add":
		return runAdd(ctx, c, rest, stdout)
	case "list":
		return runList(ctx, c, stdout)
	case "update":
		return runUpdate(ctx, c, rest, stdout)
	case "delete":
		return runDelete(ctx, c, rest, stdout)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

type fieldFlag struct {
	field string
	value *string
}

// fieldFlags はフォームのフィールドに対応するフラグを登録します。
func fieldFlags(fs *flag.FlagSet, withID bool) map[string]fieldFlag {
	names := map[string]string{
		"first":      form.FieldFirstName,
		"last":       form.FieldLastName,
		"email":      form.FieldEmail,
		"phone":      form.FieldPhoneNumber,
		"department": form.FieldDepartment,
		"joined":     form.FieldDateOfJoining,
		"role":       form.FieldRole,
	}
	if withID {
		names["id"] = form.FieldEmployeeID
	}

	flags := make(map[string]fieldFlag, len(names))
	for flagName, field := range names {
		flags[flagName] = fieldFlag{field: field, value: fs.String(flagName, "", field)}
	}
	return flags
}

func runAdd(ctx context.Context, c *client.Client, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := fieldFlags(fs, true)
	if err := fs.Parse(args); err != nil {
		return err
	}

	state := form.New()
	fs.Visit(func(f *flag.Flag) {
		ff := flags[f.Name]
		state = form.Reduce(state, form.ChangeField{Field: ff.field, Value: *ff.value})
	})

	if msg := state.FieldError(form.FieldEmployeeID); msg != "" {
		return fmt.Errorf("%s: %s", form.FieldEmployeeID, msg)
	}
	if missing := state.Values().Missing(); len(missing) > 0 {
		return fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	state = form.Reduce(state, form.Submit{})
	v := state.Values()
	msg, err := c.Add(ctx, client.EmployeeInput{
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		EmployeeID:    v.EmployeeID,
		Email:         v.Email,
		PhoneNumber:   v.PhoneNumber,
		Department:    v.Department,
		DateOfJoining: v.DateOfJoining,
		Role:          v.Role,
	})
	if err != nil {
		state = form.Reduce(state, form.SubmitFailed{Error: errorMessage(err)})
		return errors.New(state.GlobalError())
	}

	state = form.Reduce(state, form.SubmitSucceeded{Message: msg})
	_, err = fmt.Fprintln(stdout, state.Message())
	return err
}

func runList(ctx context.Context, c *client.Client, stdout io.Writer) error {
	employees, err := c.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "EMPLOYEE ID\tFIRST NAME\tLAST NAME\tEMAIL\tPHONE\tDEPARTMENT\tJOINED\tROLE")
	for _, e := range employees {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.EmployeeID, e.FirstName, e.LastName, e.Email, e.PhoneNumber, e.Department, e.DateOfJoining, e.Role)
	}
	return tw.Flush()
}

func runUpdate(ctx context.Context, c *client.Client, args []string, stdout io.Writer) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return errors.New("update requires an employee id")
	}
	key := args[0]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := fieldFlags(fs, false)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	state := form.Reduce(form.New(), form.StartEdit{Values: form.Values{EmployeeID: key}})
	var in client.UpdateInput
	fs.Visit(func(f *flag.Flag) {
		ff := flags[f.Name]
		value := *ff.value
		state = form.Reduce(state, form.ChangeField{Field: ff.field, Value: value})
		switch ff.field {
		case form.FieldFirstName:
			in.FirstName = &value
		case form.FieldLastName:
			in.LastName = &value
		case form.FieldEmail:
			in.Email = &value
		case form.FieldPhoneNumber:
			in.PhoneNumber = &value
		case form.FieldDepartment:
			in.Department = &value
		case form.FieldDateOfJoining:
			in.DateOfJoining = &value
		case form.FieldRole:
			in.Role = &value
		}
	})

	state = form.Reduce(state, form.Submit{})
	msg, err := c.Update(ctx, state.EditingKey(), in)
	if err != nil {
		state = form.Reduce(state, form.SubmitFailed{Error: errorMessage(err)})
		return errors.New(state.GlobalError())
	}

	state = form.Reduce(state, form.SubmitSucceeded{Message: msg})
	_, err = fmt.Fprintln(stdout, state.Message())
	return err
}

func runDelete(ctx context.Context, c *client.Client, args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("delete requires exactly one employee id")
	}

	msg, err := c.Delete(ctx, args[0])
	if err != nil {
		return errors.New(errorMessage(err))
	}
	_, err = fmt.Fprintln(stdout, msg)
	return err
}

func errorMessage(err error) string {
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	if len(apiErr.Violations) == 0 {
		return apiErr.Message
	}
	parts := make([]string, 0, len(apiErr.Violations))
	for _, v := range apiErr.Violations {
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Message))
	}
	return apiErr.Message + " " + strings.Join(parts, "; ")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
