package catalog

// surahTable lists all 114 surahs with their common Russian and English
// aliases. Translations order: Russian title, Russian transliteration,
// English title.
var surahTable = []Surah{
	{Number: 1, Latin: "Al-Fatihah", Arabic: "الفاتحة", Translations: []string{"Открывающая", "Аль-Фатиха", "The Opening"}},
	{Number: 2, Latin: "Al-Baqarah", Arabic: "البقرة", Translations: []string{"Корова", "Аль-Бакара", "The Cow"}},
	{Number: 3, Latin: "Ali Imran", Arabic: "آل عمران", Translations: []string{"Семейство Имрана", "Али Имран", "The Family of Imran"}},
	{Number: 4, Latin: "An-Nisa", Arabic: "النساء", Translations: []string{"Женщины", "Ан-Ниса", "The Women"}},
	{Number: 5, Latin: "Al-Ma'idah", Arabic: "المائدة", Translations: []string{"Трапеза", "Аль-Маида", "The Table Spread"}},
	{Number: 6, Latin: "Al-An'am", Arabic: "الأنعام", Translations: []string{"Скот", "Аль-Анам", "The Cattle"}},
	{Number: 7, Latin: "Al-A'raf", Arabic: "الأعراف", Translations: []string{"Преграды", "Аль-Аъраф", "The Heights"}},
	{Number: 8, Latin: "Al-Anfal", Arabic: "الأنفال", Translations: []string{"Трофеи", "Аль-Анфаль", "The Spoils of War"}},
	{Number: 9, Latin: "At-Tawbah", Arabic: "التوبة", Translations: []string{"Покаяние", "Ат-Тауба", "The Repentance"}},
	{Number: 10, Latin: "Yunus", Arabic: "يونس", Translations: []string{"Юнус", "Йунус", "Jonah"}},
	{Number: 11, Latin: "Hud", Arabic: "هود", Translations: []string{"Худ", "Гуд", "Hud"}},
	{Number: 12, Latin: "Yusuf", Arabic: "يوسف", Translations: []string{"Йусуф", "Юсуф", "Joseph"}},
	{Number: 13, Latin: "Ar-Ra'd", Arabic: "الرعد", Translations: []string{"Гром", "Ар-Ра'д", "The Thunder"}},
	{Number: 14, Latin: "Ibrahim", Arabic: "ابراهيم", Translations: []string{"Ибрахим", "Авраам", "Abraham"}},
	{Number: 15, Latin: "Al-Hijr", Arabic: "الحجر", Translations: []string{"Аль-Хиджр", "Каменные долины", "The Rocky Tract"}},
	{Number: 16, Latin: "An-Nahl", Arabic: "النحل", Translations: []string{"Пчёлы", "Ан-Нахль", "The Bees"}},
	{Number: 17, Latin: "Al-Isra", Arabic: "الإسراء", Translations: []string{"Ночной перенос", "Аль-Исра", "The Night Journey"}},
	{Number: 18, Latin: "Al-Kahf", Arabic: "الكهف", Translations: []string{"Пещера", "Аль-Кахф", "The Cave"}},
	{Number: 19, Latin: "Maryam", Arabic: "مريم", Translations: []string{"Марям", "Марьям", "Mary"}},
	{Number: 20, Latin: "Ta-Ha", Arabic: "طه", Translations: []string{"Та-Ха", "Та Ха", "Ta-Ha"}},
	{Number: 21, Latin: "Al-Anbiya", Arabic: "الأنبياء", Translations: []string{"Пророки", "Аль-Анбия", "The Prophets"}},
	{Number: 22, Latin: "Al-Hajj", Arabic: "الحج", Translations: []string{"Паломничество", "Аль-Хадж", "The Pilgrimage"}},
	{Number: 23, Latin: "Al-Mu'minun", Arabic: "المؤمنون", Translations: []string{"Верующие", "Аль-Муминун", "The Believers"}},
	{Number: 24, Latin: "An-Nur", Arabic: "النور", Translations: []string{"Свет", "Ан-Нур", "The Light"}},
	{Number: 25, Latin: "Al-Furqan", Arabic: "الفرقان", Translations: []string{"Различение", "Аль-Фуркан", "The Criterion"}},
	{Number: 26, Latin: "Ash-Shu'ara", Arabic: "الشعراء", Translations: []string{"Поэты", "Аш-Шуара", "The Poets"}},
	{Number: 27, Latin: "An-Naml", Arabic: "النمل", Translations: []string{"Муравьи", "Ан-Намль", "The Ant"}},
	{Number: 28, Latin: "Al-Qasas", Arabic: "القصص", Translations: []string{"Рассказанные истории", "Аль-Касас", "The Stories"}},
	{Number: 29, Latin: "Al-Ankabut", Arabic: "العنكبوت", Translations: []string{"Паук", "Аль-Анкабут", "The Spider"}},
	{Number: 30, Latin: "Ar-Rum", Arabic: "الروم", Translations: []string{"Римляне", "Ар-Рум", "The Romans"}},
	{Number: 31, Latin: "Luqman", Arabic: "لقمان", Translations: []string{"Лукман", "Лукман", "Luqman"}},
	{Number: 32, Latin: "As-Sajdah", Arabic: "السجدة", Translations: []string{"Прострация", "Ас-Саджда", "The Prostration"}},
	{Number: 33, Latin: "Al-Ahzab", Arabic: "الأحزاب", Translations: []string{"Союзники", "Аль-Ахзаб", "The Confederates"}},
	{Number: 34, Latin: "Saba", Arabic: "سبأ", Translations: []string{"Саба", "Саба", "Sheba"}},
	{Number: 35, Latin: "Fatir", Arabic: "فاطر", Translations: []string{"Создатель", "Фатир", "The Originator"}},
	{Number: 36, Latin: "Ya-Sin", Arabic: "يس", Translations: []string{"Йа-Син", "Я-Син", "Ya-Sin"}},
	{Number: 37, Latin: "As-Saffat", Arabic: "الصافات", Translations: []string{"Выстраивающиеся в ряд", "Ас-Саффат", "Those Who Set The Ranks"}},
	{Number: 38, Latin: "Sad", Arabic: "ص", Translations: []string{"Сад", "Сад", "Sad"}},
	{Number: 39, Latin: "Az-Zumar", Arabic: "الزمر", Translations: []string{"Толпы", "Аз-Зумар", "The Groups"}},
	{Number: 40, Latin: "Ghafir", Arabic: "غافر", Translations: []string{"Прощающий", "Гафир", "The Forgiver"}},
	{Number: 41, Latin: "Fussilat", Arabic: "فصلت", Translations: []string{"Разъяснены", "Фуссилат", "Explained In Detail"}},
	{Number: 42, Latin: "Ash-Shura", Arabic: "الشورى", Translations: []string{"Совет", "Аш-Шура", "The Consultation"}},
	{Number: 43, Latin: "Az-Zukhruf", Arabic: "الزخرف", Translations: []string{"Украшения", "Аз-Зухруф", "The Ornaments of Gold"}},
	{Number: 44, Latin: "Ad-Dukhan", Arabic: "الدخان", Translations: []string{"Дым", "Ад-Духан", "The Smoke"}},
	{Number: 45, Latin: "Al-Jathiyah", Arabic: "الجاثية", Translations: []string{"Коленопреклонённые", "Аль-Джасия", "The Crouching"}},
	{Number: 46, Latin: "Al-Ahqaf", Arabic: "الأحقاف", Translations: []string{"Песчаные дюны", "Аль-Ахкаф", "The Wind-Curved Sandhills"}},
	{Number: 47, Latin: "Muhammad", Arabic: "محمد", Translations: []string{"Мухаммад", "Мухаммад", "Muhammad"}},
	{Number: 48, Latin: "Al-Fath", Arabic: "الفتح", Translations: []string{"Победа", "Открытие", "The Victory"}},
	{Number: 49, Latin: "Al-Hujurat", Arabic: "الحجرات", Translations: []string{"Комнаты", "Аль-Худжурат", "The Rooms"}},
	{Number: 50, Latin: "Qaf", Arabic: "ق", Translations: []string{"Каф", "Каф", "Qaf"}},
	{Number: 51, Latin: "Adh-Dhariyat", Arabic: "الذاريات", Translations: []string{"Разносящие", "Ад-Зарият", "The Winnowing Winds"}},
	{Number: 52, Latin: "At-Tur", Arabic: "الطور", Translations: []string{"Гора", "Ат-Тур", "The Mount"}},
	{Number: 53, Latin: "An-Najm", Arabic: "النجم", Translations: []string{"Звезда", "Ан-Наджм", "The Star"}},
	{Number: 54, Latin: "Al-Qamar", Arabic: "القمر", Translations: []string{"Луна", "Аль-Камар", "The Moon"}},
	{Number: 55, Latin: "Ar-Rahman", Arabic: "الرحمن", Translations: []string{"Милостивый", "Ар-Рахман", "The Beneficent"}},
	{Number: 56, Latin: "Al-Waqi'ah", Arabic: "الواقعة", Translations: []string{"Неизбежное", "Аль-Ваки'а", "The Inevitable"}},
	{Number: 57, Latin: "Al-Hadid", Arabic: "الحديد", Translations: []string{"Железо", "Аль-Хадид", "The Iron"}},
	{Number: 58, Latin: "Al-Mujadilah", Arabic: "المجادلة", Translations: []string{"Спорящая", "Аль-Муджадила", "The Pleading Woman"}},
	{Number: 59, Latin: "Al-Hashr", Arabic: "الحشر", Translations: []string{"Сбор", "Аль-Хашр", "The Exile"}},
	{Number: 60, Latin: "Al-Mumtahanah", Arabic: "الممتحنة", Translations: []string{"Испытуемая", "Аль-Мумтахина", "The Examined One"}},
	{Number: 61, Latin: "As-Saff", Arabic: "الصف", Translations: []string{"Ряды", "Ас-Сафф", "The Ranks"}},
	{Number: 62, Latin: "Al-Jumu'ah", Arabic: "الجمعة", Translations: []string{"Пятница", "Аль-Джуму'а", "The Congregation"}},
	{Number: 63, Latin: "Al-Munafiqun", Arabic: "المنافقون", Translations: []string{"Лицемеры", "Аль-Мунафикун", "The Hypocrites"}},
	{Number: 64, Latin: "At-Taghabun", Arabic: "التغابن", Translations: []string{"Обман", "Ат-Тагабун", "The Mutual Disillusion"}},
	{Number: 65, Latin: "At-Talaq", Arabic: "الطلاق", Translations: []string{"Развод", "Ат-Талак", "The Divorce"}},
	{Number: 66, Latin: "At-Tahrim", Arabic: "التحريم", Translations: []string{"Запрещение", "Ат-Тахрим", "The Prohibition"}},
	{Number: 67, Latin: "Al-Mulk", Arabic: "الملك", Translations: []string{"Власть", "Аль-Мульк", "The Sovereignty"}},
	{Number: 68, Latin: "Al-Qalam", Arabic: "القلم", Translations: []string{"Писало", "Аль-Калам", "The Pen"}},
	{Number: 69, Latin: "Al-Haqqah", Arabic: "الحاقة", Translations: []string{"Истина", "Аль-Хакка", "The Reality"}},
	{Number: 70, Latin: "Al-Ma'arij", Arabic: "المعارج", Translations: []string{"Ступени", "Аль-Мааридж", "The Ascending Stairways"}},
	{Number: 71, Latin: "Nuh", Arabic: "نوح", Translations: []string{"Нух", "Ной", "Noah"}},
	{Number: 72, Latin: "Al-Jinn", Arabic: "الجن", Translations: []string{"Джинны", "Аль-Джинн", "The Jinn"}},
	{Number: 73, Latin: "Al-Muzzammil", Arabic: "المزمل", Translations: []string{"Закутавшийся", "Аль-Муззаммил", "The Enshrouded One"}},
	{Number: 74, Latin: "Al-Muddathir", Arabic: "المدثر", Translations: []string{"Покрывшийся", "Аль-Муддаттир", "The Cloaked One"}},
	{Number: 75, Latin: "Al-Qiyamah", Arabic: "القيامة", Translations: []string{"Воскрешение", "Аль-Кияма", "The Resurrection"}},
	{Number: 76, Latin: "Al-Insan", Arabic: "الإنسان", Translations: []string{"Человек", "Аль-Инсан", "Man"}},
	{Number: 77, Latin: "Al-Mursalat", Arabic: "المرسلات", Translations: []string{"Посланные", "Аль-Мурсалят", "Those Sent Forth"}},
	{Number: 78, Latin: "An-Naba", Arabic: "النبأ", Translations: []string{"Весть", "Ан-Наба", "The Announcement"}},
	{Number: 79, Latin: "An-Nazi'at", Arabic: "النازعات", Translations: []string{"Вырывающие", "Ан-Назиат", "Those Who Drag Forth"}},
	{Number: 80, Latin: "Abasa", Arabic: "عبس", Translations: []string{"Нахмурился", "Абаса", "He Frowned"}},
	{Number: 81, Latin: "At-Takwir", Arabic: "التكوير", Translations: []string{"Скручивание", "Ат-Таквир", "The Overturning"}},
	{Number: 82, Latin: "Al-Infitar", Arabic: "الانفطار", Translations: []string{"Разверзание", "Аль-Инфитар", "The Cleaving"}},
	{Number: 83, Latin: "Al-Mutaffifin", Arabic: "المطففين", Translations: []string{"Обвешивающие", "Аль-Мутаффифин", "Defrauding"}},
	{Number: 84, Latin: "Al-Inshiqaq", Arabic: "الانشقاق", Translations: []string{"Раскалывание", "Аль-Иншикак", "The Splitting Open"}},
	{Number: 85, Latin: "Al-Buruj", Arabic: "البروج", Translations: []string{"Созвездия", "Аль-Бурудж", "The Constellations"}},
	{Number: 86, Latin: "At-Tariq", Arabic: "الطارق", Translations: []string{"Ночной гость", "Ат-Тарик", "The Morning Star"}},
	{Number: 87, Latin: "Al-A'la", Arabic: "الأعلى", Translations: []string{"Всевышний", "Аль-Аъля", "The Most High"}},
	{Number: 88, Latin: "Al-Ghashiyah", Arabic: "الغاشية", Translations: []string{"Покрывающее", "Аль-Гашия", "The Overwhelming"}},
	{Number: 89, Latin: "Al-Fajr", Arabic: "الفجر", Translations: []string{"Рассвет", "Аль-Фаджр", "The Dawn"}},
	{Number: 90, Latin: "Al-Balad", Arabic: "البلد", Translations: []string{"Город", "Аль-Балад", "The City"}},
	{Number: 91, Latin: "Ash-Shams", Arabic: "الشمس", Translations: []string{"Солнце", "Аш-Шамс", "The Sun"}},
	{Number: 92, Latin: "Al-Layl", Arabic: "الليل", Translations: []string{"Ночь", "Аль-Лайл", "The Night"}},
	{Number: 93, Latin: "Ad-Duha", Arabic: "الضحى", Translations: []string{"Утро", "Ад-Духа", "The Morning Hours"}},
	{Number: 94, Latin: "Ash-Sharh", Arabic: "الشرح", Translations: []string{"Раскрытие груди", "Аш-Шарх", "The Relief"}},
	{Number: 95, Latin: "At-Tin", Arabic: "التين", Translations: []string{"Смоковница", "Ат-Тин", "The Fig"}},
	{Number: 96, Latin: "Al-Alaq", Arabic: "العلق", Translations: []string{"Сгусток", "Аль-Алак", "The Clinging Clot"}},
	{Number: 97, Latin: "Al-Qadr", Arabic: "القدر", Translations: []string{"Предопределение", "Аль-Кадр", "The Power"}},
	{Number: 98, Latin: "Al-Bayyinah", Arabic: "البينة", Translations: []string{"Ясное знамение", "Аль-Баййина", "The Clear Proof"}},
	{Number: 99, Latin: "Az-Zalzalah", Arabic: "الزلزلة", Translations: []string{"Землетрясение", "Аз-Залзалах", "The Earthquake"}},
	{Number: 100, Latin: "Al-Adiyat", Arabic: "العاديات", Translations: []string{"Скачущие", "Аль-Адият", "Those That Run"}},
	{Number: 101, Latin: "Al-Qari'ah", Arabic: "القارعة", Translations: []string{"Поражающее", "Аль-Кариа", "The Striking Calamity"}},
	{Number: 102, Latin: "At-Takathur", Arabic: "التكاثر", Translations: []string{"Соперничество в богатстве", "Ат-Такатхур", "The Rivalry in World Increase"}},
	{Number: 103, Latin: "Al-Asr", Arabic: "العصر", Translations: []string{"Время", "Аль-Аср", "The Declining Day"}},
	{Number: 104, Latin: "Al-Humazah", Arabic: "الهمزة", Translations: []string{"Хулитель", "Аль-Хумаза", "The Slanderer"}},
	{Number: 105, Latin: "Al-Fil", Arabic: "الفيل", Translations: []string{"Слон", "Аль-Филь", "The Elephant"}},
	{Number: 106, Latin: "Quraysh", Arabic: "قريش", Translations: []string{"Курайшиты", "Курайш", "Quraysh"}},
	{Number: 107, Latin: "Al-Ma'un", Arabic: "الماعون", Translations: []string{"Мелкая помощь", "Аль-Маун", "The Small Kindnesses"}},
	{Number: 108, Latin: "Al-Kawthar", Arabic: "الكوثر", Translations: []string{"Изобилие", "Аль-Каусар", "The Abundance"}},
	{Number: 109, Latin: "Al-Kafirun", Arabic: "الكافرون", Translations: []string{"Неверующие", "Аль-Кафирун", "The Disbelievers"}},
	{Number: 110, Latin: "An-Nasr", Arabic: "النصر", Translations: []string{"Помощь", "Ан-Наср", "The Divine Support"}},
	{Number: 111, Latin: "Al-Masad", Arabic: "المسد", Translations: []string{"Пальмовая верёвка", "Аль-Масад", "The Palm Fiber"}},
	{Number: 112, Latin: "Al-Ikhlas", Arabic: "الإخلاص", Translations: []string{"Искренность", "Аль-Ихляс", "The Sincerity"}},
	{Number: 113, Latin: "Al-Falaq", Arabic: "الفلق", Translations: []string{"Рассвет", "Аль-Фалак", "The Daybreak"}},
	{Number: 114, Latin: "An-Nas", Arabic: "الناس", Translations: []string{"Люди", "Ан-Нас", "Mankind"}},
}
