package model

// Keys of the app_settings table
const (
	SettingTemplateClinicID = "template_clinic_id"
	SettingDueSoonLastRun   = "due_soon_last_run"
)
