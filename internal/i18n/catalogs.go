package i18n

var dv = map[string]string{
	"common.error":           "މައްސަލައެއް",
	"error.title":            "މައްސަލައެއް",
	"error.tryAgain":         "އަލުން މަސައްކަތް ކުރައްވާ.",
	"error.somethingWrong":   "ކޮންމެވެސް ކަމެއް ރަނގަޅެއް ނޫން.",
	"auth.login":             "ލޮގިން",
	"auth.logout":            "ލޮގްއައުޓް",
	"dashboard.title":        "ޑޭޝްބޯޑް",
	"tile.leave":             "ޗުއްޓީ",
	"tile.payroll":           "މުސާރަ",
	"tile.documents":         "ލިޔެކިޔުން",
	"tile.settings":          "ސެޓިންގްސް",
	"profile.save":           "ރައްކާކުރޭ",
	"profile.cancel":         "ކެންސަލް",
	"profile.email":          "އީމެއިލް",
	"chat.newMessage":        "އެޗްއާރުން އައި މެސެޖެއް",
	"chat.placeholder":       "މެސެޖެއް ލިޔުއްވާ",
	"setting.selectLanguage": "ބަސް ޚިޔާރުކުރޭ",
	"setting.darkMode":       "ޑާކް މޯޑް",
	"handbook.title":         "މުވައްޒަފުންގެ ހޭންޑްބުކް",
	"onboarding.next":        "ކުރިއަށް",
}

var hi = map[string]string{
	"common.error":           "त्रुटि",
	"error.title":            "त्रुटि",
	"error.tryAgain":         "कृपया पुनः प्रयास करें।",
	"error.somethingWrong":   "कुछ गलत हो गया।",
	"error.updateFailed":     "अपडेट विफल",
	"auth.login":             "लॉगिन",
	"auth.logout":            "लॉगआउट",
	"dashboard.title":        "डैशबोर्ड",
	"tile.attendance":        "उपस्थिति",
	"tile.leave":             "छुट्टी",
	"tile.profile":           "प्रोफ़ाइल",
	"tile.payroll":           "वेतन",
	"tile.documents":         "दस्तावेज़",
	"tile.settings":          "सेटिंग्स",
	"profile.save":           "सहेजें",
	"profile.cancel":         "रद्द करें",
	"profile.email":          "ईमेल",
	"profile.department":     "विभाग",
	"toast.profileUpdated":   "प्रोफ़ाइल अपडेट हो गई",
	"chat.newMessage":        "एचआर से नया संदेश",
	"chat.placeholder":       "संदेश लिखें",
	"setting.selectLanguage": "भाषा चुनें",
	"setting.darkMode":       "डार्क मोड",
	"handbook.title":         "कर्मचारी पुस्तिका",
	"handbook.noResults":     "कोई परिणाम नहीं मिला",
	"onboarding.next":        "आगे",
}

var ta = map[string]string{
	"common.error":           "பிழை",
	"error.title":            "பிழை",
	"error.tryAgain":         "மீண்டும் முயற்சிக்கவும்.",
	"error.somethingWrong":   "ஏதோ தவறு நடந்துவிட்டது.",
	"auth.login":             "உள்நுழை",
	"auth.logout":            "வெளியேறு",
	"dashboard.title":        "முகப்பு",
	"tile.attendance":        "வருகை",
	"tile.leave":             "விடுப்பு",
	"tile.profile":           "சுயவிவரம்",
	"tile.payroll":           "சம்பளம்",
	"tile.documents":         "ஆவணங்கள்",
	"tile.settings":          "அமைப்புகள்",
	"profile.save":           "சேமி",
	"profile.cancel":         "ரத்து செய்",
	"profile.email":          "மின்னஞ்சல்",
	"chat.newMessage":        "மனிதவளத்திலிருந்து புதிய செய்தி",
	"chat.placeholder":       "செய்தியை உள்ளிடவும்",
	"setting.selectLanguage": "மொழியைத் தேர்ந்தெடுக்கவும்",
	"setting.darkMode":       "இருண்ட பயன்முறை",
	"handbook.title":         "பணியாளர் கையேடு",
	"onboarding.next":        "அடுத்து",
}

var ml = map[string]string{
	"common.error":           "പിശക്",
	"error.title":            "പിശക്",
	"error.tryAgain":         "ദയവായി വീണ്ടും ശ്രമിക്കുക.",
	"auth.login":             "ലോഗിൻ",
	"auth.logout":            "ലോഗൗട്ട്",
	"dashboard.title":        "ഡാഷ്ബോർഡ്",
	"tile.attendance":        "ഹാജർ",
	"tile.leave":             "അവധി",
	"tile.profile":           "പ്രൊഫൈൽ",
	"tile.payroll":           "ശമ്പളം",
	"tile.documents":         "രേഖകൾ",
	"tile.settings":          "ക്രമീകരണങ്ങൾ",
	"profile.save":           "സേവ് ചെയ്യുക",
	"profile.cancel":         "റദ്ദാക്കുക",
	"chat.newMessage":        "എച്ച്ആറിൽ നിന്ന് പുതിയ സന്ദേശം",
	"chat.placeholder":       "സന്ദേശം ടൈപ്പ് ചെയ്യുക",
	"setting.selectLanguage": "ഭാഷ തിരഞ്ഞെടുക്കുക",
	"setting.darkMode":       "ഡാർക്ക് മോഡ്",
	"handbook.title":         "ജീവനക്കാരുടെ കൈപ്പുസ്തകം",
	"onboarding.next":        "അടുത്തത്",
}

var bn = map[string]string{
	"common.error":           "ত্রুটি",
	"error.title":            "ত্রুটি",
	"error.tryAgain":         "অনুগ্রহ করে আবার চেষ্টা করুন।",
	"auth.login":             "লগইন",
	"auth.logout":            "লগআউট",
	"dashboard.title":        "ড্যাশবোর্ড",
	"tile.attendance":        "উপস্থিতি",
	"tile.leave":             "ছুটি",
	"tile.profile":           "প্রোফাইল",
	"tile.payroll":           "বেতন",
	"tile.documents":         "নথিপত্র",
	"tile.settings":          "সেটিংস",
	"profile.save":           "সংরক্ষণ করুন",
	"profile.cancel":         "বাতিল",
	"chat.newMessage":        "এইচআর থেকে নতুন বার্তা",
	"chat.placeholder":       "একটি বার্তা লিখুন",
	"setting.selectLanguage": "ভাষা নির্বাচন করুন",
	"setting.darkMode":       "ডার্ক মোড",
	"handbook.title":         "কর্মচারী হ্যান্ডবুক",
	"onboarding.next":        "পরবর্তী",
}

var si = map[string]string{
	"common.error":           "දෝෂයකි",
	"error.title":            "දෝෂයකි",
	"error.tryAgain":         "කරුණාකර නැවත උත්සාහ කරන්න.",
	"auth.login":             "පිවිසෙන්න",
	"auth.logout":            "පිටවන්න",
	"dashboard.title":        "උපකරණ පුවරුව",
	"tile.attendance":        "පැමිණීම",
	"tile.leave":             "නිවාඩු",
	"tile.profile":           "පැතිකඩ",
	"tile.payroll":           "වැටුප්",
	"tile.documents":         "ලේඛන",
	"tile.settings":          "සැකසුම්",
	"profile.save":           "සුරකින්න",
	"profile.cancel":         "අවලංගු කරන්න",
	"chat.newMessage":        "මානව සම්පත් අංශයෙන් නව පණිවිඩයක්",
	"chat.placeholder":       "පණිවිඩයක් ටයිප් කරන්න",
	"setting.selectLanguage": "භාෂාව තෝරන්න",
	"setting.darkMode":       "අඳුරු ප්‍රකාරය",
	"handbook.title":         "සේවක අත්පොත",
	"onboarding.next":        "ඊළඟ",
}
