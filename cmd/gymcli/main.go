// main.go - Interactive terminal client for the gym tracker API

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-gym-tracker/client"
	"go-gym-tracker/models"
	"go-gym-tracker/validation"

	"golang.org/x/term"
)

const dateHint = "YYYY-MM-DD"

type app struct {
	api         *client.Client
	list        client.WorkoutList
	session     *client.Session
	sessionPath string
	reader      *bufio.Reader
}

func main() {
	server := os.Getenv("GYM_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}

	sessionPath, err := client.DefaultSessionPath()
	if err != nil {
		fmt.Println("cannot locate config directory:", err)
		os.Exit(1)
	}

	a := &app{
		api:         client.New(server),
		sessionPath: sessionPath,
		reader:      bufio.NewReader(os.Stdin),
	}

	if err := a.api.Health(); err != nil {
		fmt.Printf("warning: %s not reachable: %v\n", server, err)
	}

	a.restoreSession()
	a.run()
}

// restoreSession picks up a persisted token and proves it still works with a
// list fetch. A rejected token is discarded quietly.
func (a *app) restoreSession() {
	session, err := client.LoadSession(a.sessionPath)
	if err != nil || session == nil {
		return
	}
	a.api.Token = session.Token
	a.session = session
	if err := a.list.Refresh(a.api); err != nil {
		a.clearSession()
		return
	}
	fmt.Printf("Welcome back, %s\n", session.User.Name)
}

func (a *app) clearSession() {
	_ = client.ClearSession(a.sessionPath)
	a.session = nil
	a.api.Token = ""
	a.list = client.WorkoutList{}
}

func (a *app) loggedIn() bool {
	return a.session != nil
}

func (a *app) run() {
	fmt.Println("gymcli - type 'help' for commands")
	for {
		fmt.Print("> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register()
		case "login":
			a.login()
		case "logout":
			a.logout()
		case "list":
			a.showList()
		case "filter":
			a.filter()
		case "show":
			a.show(args)
		case "add":
			a.add()
		case "edit":
			a.edit(args)
		case "delete":
			a.delete(args)
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, type 'help'")
		}
	}
}

func (a *app) help() {
	fmt.Println(`commands:
  register          create an account
  login             sign in
  logout            sign out and forget the session
  list              show workouts for the active filter
  filter            change exercise/date filter (refetches from server)
  show <n>          show one workout in full
  add               record a workout
  edit <n>          change fields of a workout
  delete <n>        remove a workout
  quit              leave`)
}

// printErr shows the server's message text. A 401 on a protected call means
// the session expired, which drops all client state.
func (a *app) printErr(err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		for field, msg := range fieldErrs {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		return
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Unauthorized() && a.loggedIn() {
			fmt.Println("session expired, please log in again")
			a.clearSession()
			return
		}
		for field, msg := range apiErr.Fields {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		if apiErr.Message != "" {
			fmt.Println(apiErr.Message)
		}
		return
	}
	fmt.Println(err)
}

func (a *app) register() {
	name := a.prompt("Name")
	email := a.prompt("Email")
	password := a.promptPassword("Password")

	resp, err := a.api.Register(name, email, password)
	if err != nil {
		a.printErr(err)
		return
	}
	a.startSession(resp)
	fmt.Printf("Registered as %s\n", resp.User.Email)
}

func (a *app) login() {
	email := a.prompt("Email")
	password := a.promptPassword("Password")

	resp, err := a.api.Login(email, password)
	if err != nil {
		a.printErr(err)
		return
	}
	a.startSession(resp)
	fmt.Printf("Logged in as %s\n", resp.User.Email)
}

func (a *app) startSession(resp *client.AuthResponse) {
	a.session = &client.Session{User: resp.User, Token: resp.Token}
	a.api.Token = resp.Token
	if err := a.session.Save(a.sessionPath); err != nil {
		fmt.Println("warning: session not persisted:", err)
	}
	if err := a.list.Refresh(a.api); err != nil {
		a.printErr(err)
	}
}

func (a *app) logout() {
	a.clearSession()
	fmt.Println("Logged out")
}

func (a *app) requireLogin() bool {
	if !a.loggedIn() {
		fmt.Println("log in first")
		return false
	}
	return true
}

func (a *app) showList() {
	if !a.requireLogin() {
		return
	}
	if len(a.list.Items) == 0 {
		fmt.Println("no workouts")
		return
	}
	for i, w := range a.list.Items {
		fmt.Printf("%3d. %-10s %-30s %dx%d @ %.1f\n",
			i+1, w.Date.Format(validation.DateLayout), w.ExerciseName, w.Sets, w.Reps, w.Weight)
	}
}

func (a *app) filter() {
	if !a.requireLogin() {
		return
	}
	filter := client.Filter{
		Exercise:  a.prompt("Exercise contains (empty for all)"),
		StartDate: a.prompt("Start date " + dateHint + " (empty for none)"),
		EndDate:   a.prompt("End date " + dateHint + " (empty for none)"),
	}
	if err := a.list.SetFilter(a.api, filter); err != nil {
		a.printErr(err)
		return
	}
	a.showList()
}

func (a *app) show(args []string) {
	if !a.requireLogin() {
		return
	}
	workout, ok := a.pick(args)
	if !ok {
		return
	}
	// Fetch by ID so the view reflects the server, not the cached row
	fresh, err := a.api.Workout(workout.ID)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Printf("Exercise: %s\nDate:     %s\nSets:     %d\nReps:     %d\nWeight:   %.2f\nNotes:    %s\n",
		fresh.ExerciseName, fresh.Date.Format(validation.DateLayout), fresh.Sets, fresh.Reps, fresh.Weight, fresh.Notes)
}

func (a *app) add() {
	if !a.requireLogin() {
		return
	}
	input := validation.WorkoutInput{
		ExerciseName: a.prompt("Exercise name"),
	}
	var ok bool
	if input.Sets, ok = a.promptInt("Sets"); !ok {
		return
	}
	if input.Reps, ok = a.promptInt("Reps"); !ok {
		return
	}
	weight, ok := a.promptFloat("Weight")
	if !ok {
		return
	}
	input.Weight = &weight
	input.Date = a.prompt("Date " + dateHint + " (empty for today)")
	input.Notes = a.prompt("Notes (optional)")

	workout, err := a.api.CreateWorkout(input)
	if err != nil {
		a.printErr(err)
		return
	}
	a.list.Add(*workout)
	fmt.Println("Workout saved")
}

func (a *app) edit(args []string) {
	if !a.requireLogin() {
		return
	}
	workout, ok := a.pick(args)
	if !ok {
		return
	}

	fmt.Println("leave a field empty to keep its value")
	var update validation.WorkoutUpdate
	if v := a.prompt(fmt.Sprintf("Exercise name [%s]", workout.ExerciseName)); v != "" {
		update.ExerciseName = &v
	}
	if v := a.prompt(fmt.Sprintf("Sets [%d]", workout.Sets)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("not a number")
			return
		}
		update.Sets = &n
	}
	if v := a.prompt(fmt.Sprintf("Reps [%d]", workout.Reps)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Println("not a number")
			return
		}
		update.Reps = &n
	}
	if v := a.prompt(fmt.Sprintf("Weight [%.2f]", workout.Weight)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fmt.Println("not a number")
			return
		}
		update.Weight = &f
	}
	if v := a.prompt(fmt.Sprintf("Date [%s]", workout.Date.Format(validation.DateLayout))); v != "" {
		update.Date = &v
	}
	if v := a.prompt(fmt.Sprintf("Notes [%s]", workout.Notes)); v != "" {
		update.Notes = &v
	}
	if update.Empty() {
		fmt.Println("nothing to change")
		return
	}

	updated, err := a.api.UpdateWorkout(workout.ID, update)
	if err != nil {
		a.printErr(err)
		return
	}
	a.list.Apply(*updated)
	fmt.Println("Workout updated")
}

func (a *app) delete(args []string) {
	if !a.requireLogin() {
		return
	}
	workout, ok := a.pick(args)
	if !ok {
		return
	}
	if a.prompt(fmt.Sprintf("Delete %q? (y/N)", workout.ExerciseName)) != "y" {
		return
	}
	if err := a.api.DeleteWorkout(workout.ID); err != nil {
		a.printErr(err)
		return
	}
	a.list.Remove(workout.ID)
	fmt.Println("Workout deleted")
}

// pick resolves a 1-based list position argument against the current list.
func (a *app) pick(args []string) (*models.Workout, bool) {
	if len(args) != 1 {
		fmt.Println("usage: <command> <n> (run 'list' to see positions)")
		return nil, false
	}
	position, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("not a number:", args[0])
		return nil, false
	}
	workout, ok := a.list.Get(position)
	if !ok {
		fmt.Println("no workout at position", position)
		return nil, false
	}
	return workout, true
}

func (a *app) prompt(label string) string {
	fmt.Print(label + ": ")
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (a *app) promptPassword(label string) string {
	fmt.Print(label + ": ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(password)
}

func (a *app) promptInt(label string) (int, bool) {
	raw := a.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Println("not a number:", raw)
		return 0, false
	}
	return n, true
}

func (a *app) promptFloat(label string) (float64, bool) {
	raw := a.prompt(label)
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Println("not a number:", raw)
		return 0, false
	}
	return f, true
}
