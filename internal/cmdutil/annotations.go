package cmdutil

// AnnotationMasonCommand names the mason subcommand a command runs. The
// generated reference docs list it for each command.
const AnnotationMasonCommand = "mason-command"
