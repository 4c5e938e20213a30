package commands

type PassCheckCommand struct {
	Check   CheckCommand   `command:"check" description:"Evaluate the strength of a password"`
	Serve   ServeCommand   `command:"serve" description:"Run the web form and JSON API"`
	Update  UpdateCommand  `command:"update" description:"Update passcheck to the latest version"`
	Version VersionCommand `command:"version" description:"Displays passcheck version" alias:"V"`
}

var PassCheck PassCheckCommand
