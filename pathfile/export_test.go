package pathfile

// SetTestHookCrashBeforeRename installs a hook that runs after the
// temporary file is synced and closed, just before the rename.
func SetTestHookCrashBeforeRename(hook func()) {
	testHookCrashBeforeRename = hook
}
