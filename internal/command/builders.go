package command

const gitBinary = "git"

// GitAdd builds a git add command for the given pathspec
func GitAdd(pathspec string) Command {
	return Command{
		Name: gitBinary,
		Args: []string{"add", pathspec},
	}
}

// GitCommit builds a git commit command with the given message
func GitCommit(message string) Command {
	return Command{
		Name: gitBinary,
		Args: []string{"commit", "-m", message},
	}
}

// GitBranchRename builds a command that force-renames the current branch
func GitBranchRename(branch string) Command {
	return Command{
		Name: gitBinary,
		Args: []string{"branch", "-M", branch},
	}
}

// GitRemoteAdd builds a git remote add command
func GitRemoteAdd(remote, url string) Command {
	return Command{
		Name: gitBinary,
		Args: []string{"remote", "add", remote, url},
	}
}

// GitPushUpstream builds a git push command that sets upstream tracking
func GitPushUpstream(remote, branch string) Command {
	return Command{
		Name: gitBinary,
		Args: []string{"push", "-u", remote, branch},
	}
}

// InDir returns a copy of cmd that runs in dir.
func InDir(cmd Command, dir string) Command {
	cmd.WorkDir = dir
	return cmd
}
