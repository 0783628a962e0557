package usecases

// SettingChangeNotifier is told which keys changed after a successful write.
type SettingChangeNotifier interface {
	Invalidate(keys ...string)
}
