package i18n

// arabic maps English message keys to their Arabic text. Keys without an
// entry fall back to English.
var arabic = map[string]string{
	// navigation
	"settings":   "الإعدادات",
	"profile":    "الملف الشخصي",
	"account":    "الحساب",
	"language":   "اللغة",
	"appearance": "المظهر",
	"debug":      "التصحيح",
	"sign out":   "تسجيل الخروج",
	"quit":       "خروج",
	"sign in":    "تسجيل الدخول",

	// menu descriptions
	"name and email":     "الاسم والبريد الإلكتروني",
	"email and password": "البريد الإلكتروني وكلمة المرور",
	"english or arabic":  "الإنجليزية أو العربية",
	"theme and layout":   "السمة والتخطيط",
	"stored state":       "الحالة المخزنة",
	"end session":        "إنهاء الجلسة",
	"exit":               "الخروج",

	// field labels
	"name":             "الاسم",
	"email":            "البريد الإلكتروني",
	"new email":        "البريد الجديد",
	"confirm password": "تأكيد كلمة المرور",
	"current password": "كلمة المرور الحالية",
	"new password":     "كلمة المرور الجديدة",
	"password":         "كلمة المرور",
	"strength":         "القوة",
	"joined":           "تاريخ الانضمام",
	"last login":       "آخر دخول",
	"last updated":     "آخر تحديث",
	"change email":     "تغيير البريد الإلكتروني",
	"change password":  "تغيير كلمة المرور",

	// strength levels
	"weak":   "ضعيفة",
	"fair":   "مقبولة",
	"good":   "جيدة",
	"strong": "قوية",

	// appearance
	"theme":            "السمة",
	"grid columns":     "أعمدة الشبكة",
	"auto refresh":     "التحديث التلقائي",
	"refresh interval": "فترة التحديث",
	"light":            "فاتح",
	"dark":             "داكن",
	"on":               "تشغيل",
	"off":              "إيقاف",

	// validation
	"name is required":                      "الاسم مطلوب",
	"invalid email address":                 "البريد الإلكتروني غير صالح",
	"all fields are required":               "جميع الحقول مطلوبة",
	"password is incorrect":                 "كلمة المرور غير صحيحة",
	"current password is incorrect":         "كلمة المرور الحالية غير صحيحة",
	"new email must differ from current":    "يجب أن يختلف البريد الجديد عن الحالي",
	"passwords do not match":                "كلمتا المرور غير متطابقتين",
	"new password must differ from current": "يجب أن تختلف كلمة المرور الجديدة عن الحالية",
	"password is too weak":                  "كلمة المرور ضعيفة جدًا",
	"invalid email or password":             "البريد الإلكتروني أو كلمة المرور غير صحيحة",

	// toasts
	"saving...":                  "جارٍ الحفظ...",
	"profile updated":            "تم تحديث الملف الشخصي",
	"profile update failed":      "فشل تحديث الملف الشخصي",
	"email updated":              "تم تحديث البريد الإلكتروني",
	"email update failed":        "فشل تحديث البريد الإلكتروني",
	"password updated":           "تم تحديث كلمة المرور",
	"password update failed":     "فشل تحديث كلمة المرور",
	"language changed to %s":     "تم تغيير اللغة إلى %s",
	"theme set to %s":            "تم تعيين السمة إلى %s",
	"grid columns set to %d":     "تم تعيين أعمدة الشبكة إلى %d",
	"auto refresh %s":            "التحديث التلقائي %s",
	"refresh interval set to %s": "تم تعيين فترة التحديث إلى %s",
	"settings save failed":       "فشل حفظ الإعدادات",
	"password suggested":         "تم اقتراح كلمة مرور",
	"welcome back, %s":           "مرحبًا بعودتك، %s",

	// unlock
	"unlock settings":            "فتح الإعدادات",
	"create a passphrase":        "إنشاء عبارة مرور",
	"passphrase":                 "عبارة المرور",
	"confirm passphrase":         "تأكيد عبارة المرور",
	"passphrase is required":     "عبارة المرور مطلوبة",
	"passphrases do not match":   "عبارتا المرور غير متطابقتين",
	"wrong passphrase":           "عبارة مرور خاطئة",
	"could not open storage: %s": "تعذر فتح التخزين: %s",
	"storage: %s":                "التخزين: %s",
	"vault":                      "خزنة مشفرة",
	"files":                      "ملفات مشفرة",

	// debug
	"total size":                     "الحجم الإجمالي",
	"no stored values":               "لا توجد قيم مخزنة",
	"storage error: %s":              "خطأ في التخزين: %s",
	"clear all stored values? (y/n)": "مسح جميع القيم المخزنة؟ (y/n)",
	"copied %s":                      "تم نسخ %s",
	"copy failed":                    "فشل النسخ",
}
